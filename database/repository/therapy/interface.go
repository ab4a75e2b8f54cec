package therapyRepo

import (
	"errors"

	"ayursutra/models"
)

// ErrNotFound is returned when no therapy matches the given id.
var ErrNotFound = errors.New("therapy not found")

// TherapyRepository defines methods for therapy catalog access.
type TherapyRepository interface {
	// Create inserts a new therapy record.
	Create(therapy *models.Therapy) error
	// GetByID retrieves a therapy by its unique ID.
	GetByID(id string) (*models.Therapy, error)
	// GetActive retrieves all active therapies.
	GetActive() ([]models.Therapy, error)
	// Update modifies an existing therapy record.
	Update(therapy *models.Therapy) error
}
