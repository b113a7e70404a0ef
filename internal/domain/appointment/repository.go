package appointment

import (
	"context"

	"github.com/cortefacil/corte-facil-api/internal/models"
)

type Repository interface {
	// -------- Appointment (create / conflict) --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CheckAvailability returns the conflicting appointment occupying
	// date+slot (and barber, when given) with an active status, or
	// gorm.ErrRecordNotFound when the slot is free.
	CheckAvailability(
		ctx context.Context,
		date string,
		timeSlot string,
		barberID *uint,
	) (*models.Appointment, error)

	// -------- Lookup --------
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	FindByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	FindByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	// -------- State change --------
	UpdateStatus(
		ctx context.Context,
		id uint,
		status Status,
	) (*models.Appointment, error)
}
