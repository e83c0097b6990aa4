package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

var ErrEmailTaken = errors.New("email already registered")

type Repository interface {
	// CreateUser returns ErrEmailTaken on a duplicate email.
	CreateUser(ctx context.Context, u *models.User) error

	// GetUserByEmail and GetUser return nil when absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}
