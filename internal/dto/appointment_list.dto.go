package dto

import (
	"time"

	"github.com/cortefacil/corte-facil-api/internal/models"
)

// AppointmentListDTO is the fixed projection returned by the
// per-client listing.
type AppointmentListDTO struct {
	ID         uint      `json:"id"`
	Date       string    `json:"data"`
	TimeSlot   string    `json:"horario"`
	Service    string    `json:"servico"`
	Status     string    `json:"status"`
	BarberName string    `json:"barbeiroNome"`
	Notes      string    `json:"observacoes"`
	CreatedAt  time.Time `json:"dataCriacao"`
}

// AppointmentCreatedDTO echoes the denormalized fields of a new booking.
type AppointmentCreatedDTO struct {
	ID         uint   `json:"id"`
	Date       string `json:"data"`
	TimeSlot   string `json:"horario"`
	Service    string `json:"servico"`
	Status     string `json:"status"`
	ClientName string `json:"clienteNome"`
}

func FromAppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AppointmentListDTO{
			ID:         ap.ID,
			Date:       ap.Date,
			TimeSlot:   ap.TimeSlot,
			Service:    ap.Service,
			Status:     ap.Status,
			BarberName: ap.BarberName,
			Notes:      ap.Notes,
			CreatedAt:  ap.CreatedAt,
		})
	}
	return out
}

func FromAppointmentCreated(ap *models.Appointment) AppointmentCreatedDTO {
	return AppointmentCreatedDTO{
		ID:         ap.ID,
		Date:       ap.Date,
		TimeSlot:   ap.TimeSlot,
		Service:    ap.Service,
		Status:     ap.Status,
		ClientName: ap.ClientName,
	}
}
