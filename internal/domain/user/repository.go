package user

import (
	"context"

	"github.com/cortefacil/corte-facil-api/internal/models"
)

// Repository exposes the only user operations the system performs.
// Users are never updated or deleted.
type Repository interface {
	Create(
		ctx context.Context,
		u *models.User,
	) error

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)
}
