package userRepo

import (
	"errors"

	"ayursutra/models"
)

// ErrNotFound is returned when no user matches the given id or email.
var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetByRole lists all users carrying the given role.
	GetByRole(role string) ([]models.User, error)
}
