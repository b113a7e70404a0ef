package models

import "time"

// DefaultBarberName is the denormalized placeholder used until a barber
// picks the appointment up.
const DefaultBarberName = "unassigned"

// DefaultPrice applies when no price is negotiated at booking time.
const DefaultPrice = 25.00

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID   uint   `gorm:"not null;index:idx_appointments_client_date,priority:1" json:"clienteId"`
	ClientName string `gorm:"size:100;not null" json:"clienteNome"`

	BarberID   *uint  `gorm:"index" json:"barbeiroId"`
	BarberName string `gorm:"size:100;default:'unassigned'" json:"barbeiroNome"`

	// Calendar date only, formatted 2006-01-02. Kept as text so the same
	// schema works on postgres and sqlite.
	Date     string `gorm:"size:10;not null;index:idx_appointments_client_date,priority:2;index:idx_appointments_date_slot,priority:1" json:"data"`
	TimeSlot string `gorm:"size:5;not null;index:idx_appointments_date_slot,priority:2" json:"horario"`

	Service string `gorm:"size:50;not null;default:'Corte de cabelo'" json:"servico"`
	Status  string `gorm:"size:20;not null;default:'scheduled';index" json:"status"`

	Notes string  `gorm:"size:500" json:"observacoes"`
	Price float64 `gorm:"type:decimal(10,2);default:25.00" json:"preco"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
