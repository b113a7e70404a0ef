package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/cortefacil/corte-facil-api/internal/domain/appointment"
	"github.com/cortefacil/corte-facil-api/internal/httperr"
	"github.com/cortefacil/corte-facil-api/internal/models"
)

func newAppointment(clientID uint, date, slot, status string) *models.Appointment {
	return &models.Appointment{
		ClientID:   clientID,
		ClientName: "Cliente",
		BarberName: models.DefaultBarberName,
		Date:       date,
		TimeSlot:   slot,
		Service:    domain.ServiceHaircut,
		Status:     status,
		Price:      models.DefaultPrice,
	}
}

func TestAppointmentGormRepository_CreateRejectsTakenSlot(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx,
		newAppointment(1, "2030-01-10", "10:00", string(domain.StatusScheduled))))

	err := repo.Create(ctx,
		newAppointment(2, "2030-01-10", "10:00", string(domain.StatusScheduled)))
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// A different slot on the same date is free.
	require.NoError(t, repo.Create(ctx,
		newAppointment(2, "2030-01-10", "11:00", string(domain.StatusScheduled))))
}

func TestAppointmentGormRepository_CancelledSlotIsReusable(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx,
		newAppointment(1, "2030-01-10", "10:00", string(domain.StatusCancelled))))

	require.NoError(t, repo.Create(ctx,
		newAppointment(2, "2030-01-10", "10:00", string(domain.StatusScheduled))))
}

func TestAppointmentGormRepository_CheckAvailability(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx,
		newAppointment(1, "2030-01-10", "10:00", string(domain.StatusConfirmed))))

	conflict, err := repo.CheckAvailability(ctx, "2030-01-10", "10:00", nil)
	require.NoError(t, err)
	assert.Equal(t, "10:00", conflict.TimeSlot)

	_, err = repo.CheckAvailability(ctx, "2030-01-10", "11:00", nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.CheckAvailability(ctx, "2030-01-11", "10:00", nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAppointmentGormRepository_CheckAvailabilityPerBarber(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))
	ctx := context.Background()

	barberA := uint(7)
	ap := newAppointment(1, "2030-01-10", "10:00", string(domain.StatusScheduled))
	ap.BarberID = &barberA
	require.NoError(t, repo.Create(ctx, ap))

	conflict, err := repo.CheckAvailability(ctx, "2030-01-10", "10:00", &barberA)
	require.NoError(t, err)
	assert.Equal(t, barberA, *conflict.BarberID)

	barberB := uint(8)
	_, err = repo.CheckAvailability(ctx, "2030-01-10", "10:00", &barberB)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAppointmentGormRepository_FindByClientOrdering(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAppointment(1, "2030-01-11", "09:00", string(domain.StatusScheduled))))
	require.NoError(t, repo.Create(ctx, newAppointment(1, "2030-01-10", "15:00", string(domain.StatusScheduled))))
	require.NoError(t, repo.Create(ctx, newAppointment(1, "2030-01-10", "10:00", string(domain.StatusCancelled))))
	require.NoError(t, repo.Create(ctx, newAppointment(2, "2030-01-10", "11:00", string(domain.StatusScheduled))))

	aps, err := repo.FindByClient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, aps, 3)

	assert.Equal(t, []string{"2030-01-10", "2030-01-10", "2030-01-11"},
		[]string{aps[0].Date, aps[1].Date, aps[2].Date})
	assert.Equal(t, []string{"10:00", "15:00", "09:00"},
		[]string{aps[0].TimeSlot, aps[1].TimeSlot, aps[2].TimeSlot})
}

func TestAppointmentGormRepository_FindByDateIncludesAllStatuses(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAppointment(1, "2030-01-10", "10:00", string(domain.StatusCancelled))))
	require.NoError(t, repo.Create(ctx, newAppointment(2, "2030-01-10", "10:00", string(domain.StatusScheduled))))
	require.NoError(t, repo.Create(ctx, newAppointment(3, "2030-01-10", "14:00", string(domain.StatusCompleted))))

	aps, err := repo.FindByDate(ctx, "2030-01-10")
	require.NoError(t, err)
	assert.Len(t, aps, 3)
}

func TestAppointmentGormRepository_UpdateStatus(t *testing.T) {
	repo := NewAppointmentGormRepository(newTestDB(t))
	ctx := context.Background()

	ap := newAppointment(1, "2030-01-10", "10:00", string(domain.StatusScheduled))
	require.NoError(t, repo.Create(ctx, ap))

	updated, err := repo.UpdateStatus(ctx, ap.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), updated.Status)

	_, err = repo.UpdateStatus(ctx, 999, domain.StatusCancelled)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
