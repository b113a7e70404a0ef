package models

import "time"

const (
	RoleClient = "client"
	RoleBarber = "barber"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"nome"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"telefone"`
	Role         string `gorm:"size:20;default:'client'" json:"tipo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func IsValidRole(role string) bool {
	return role == RoleClient || role == RoleBarber
}
