package user

import (
	"context"
	"errors"

	"github.com/dcarehealth/transport-api/internal/models"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Repository is the credential store behind signup and login.
type Repository interface {
	EmailExists(
		ctx context.Context,
		email string,
	) (bool, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	Create(
		ctx context.Context,
		u *models.User,
	) error
}
