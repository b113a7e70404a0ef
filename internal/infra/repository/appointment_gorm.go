package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/cortefacil/corte-facil-api/internal/domain/appointment"
	"github.com/cortefacil/corte-facil-api/internal/httperr"
	"github.com/cortefacil/corte-facil-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create (atomic slot claim)
// --------------------------------------------------

// Create re-checks the slot inside a transaction before inserting, so two
// concurrent bookings for the same slot cannot both commit. On postgres
// the conflicting rows are locked FOR UPDATE; sqlite serializes writers
// on its own.
func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		q := tx.Model(&models.Appointment{})
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		q = q.Where(
			"date = ? AND time_slot = ? AND status IN ?",
			ap.Date, ap.TimeSlot, domain.ActiveStatuses,
		)
		if ap.BarberID != nil {
			q = q.Where("barber_id = ?", *ap.BarberID)
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) CheckAvailability(
	ctx context.Context,
	date string,
	timeSlot string,
	barberID *uint,
) (*models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where(
			"date = ? AND time_slot = ? AND status IN ?",
			date, timeSlot, domain.ActiveStatuses,
		)
	if barberID != nil {
		q = q.Where("barber_id = ?", *barberID)
	}

	var ap models.Appointment
	if err := q.First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date ASC, time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// FindByDate returns every appointment on the date regardless of status;
// callers filter by status where it matters.
func (r *AppointmentGormRepository) FindByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	ap.Status = string(status)
	if err := r.db.WithContext(ctx).Save(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
