package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrUserNotFound is returned when no user matches the given email or ID.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
