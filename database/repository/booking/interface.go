package bookingRepo

import (
	"errors"
	"time"

	"ayursutra/models"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByStatus retrieves all bookings with the given status.
	GetByStatus(status string) ([]models.Booking, error)
	// GetByPatient retrieves all bookings made by a patient.
	GetByPatient(patientID string) ([]models.Booking, error)
	// GetByPractitioner retrieves all bookings assigned to a practitioner.
	GetByPractitioner(practitionerID string) ([]models.Booking, error)
	// CountForDay counts bookings for a (practitioner, therapy) pair whose
	// assigned date equals the given day.
	CountForDay(practitionerID, therapyID string, day time.Time) (int64, error)
	// ReplaceSessions overwrites a booking's session list in one write.
	ReplaceSessions(bookingID string, sessions []models.Session) error
	// UpdateSessionStatus sets the status of a single session by index.
	UpdateSessionStatus(bookingID string, sessionIndex int, status string) error
	// UpdateProgress overwrites the booking's progress block.
	UpdateProgress(bookingID string, progress models.Progress) error
	// UpdateStatus sets the booking's status.
	UpdateStatus(bookingID string, status string) error
	// AppendSessionNotification pushes a notification record onto a session.
	AppendSessionNotification(bookingID string, sessionIndex int, n models.Notification) error
	// MarkNotificationSent flips the sent flag on a session's notification
	// stub of the given kind and records when it was sent.
	MarkNotificationSent(bookingID string, sessionIndex int, kind string, at time.Time) error
	// GetWithSessionsBetween retrieves bookings having at least one session
	// dated within [from, to].
	GetWithSessionsBetween(from, to time.Time) ([]models.Booking, error)
}
