package scheduling

import (
	"context"
	"sync"

	bookingRepo "ayursutra/database/repository/booking"
	therapyRepo "ayursutra/database/repository/therapy"
	userRepo "ayursutra/database/repository/user"
	"ayursutra/models"
	"ayursutra/services/notification"
)

// CreateBookingInput carries the caller-supplied fields for a new booking.
// The patient id comes from the resolved identity, never from the body.
type CreateBookingInput struct {
	TherapyID      string `json:"therapyId"`
	PractitionerID string `json:"practitionerId"`
	Notes          string `json:"notes,omitempty"`
}

// SchedulingService manages booking creation, session progress and the
// reschedule sweep.
type SchedulingService interface {
	CreateBooking(ctx context.Context, actor models.Identity, input CreateBookingInput) (*models.Booking, error)
	RescheduleAll(ctx context.Context) ([]models.Booking, bool, error)
	RescheduleBooking(ctx context.Context, bookingID string) (*models.Booking, bool, error)
	MarkSessionComplete(ctx context.Context, actor models.Identity, bookingID string, sessionIndex int) (*models.Booking, error)
	MarkSessionMissed(ctx context.Context, actor models.Identity, bookingID string, sessionIndex int) (*models.Booking, error)
	GetPatientBookings(ctx context.Context, patientID string) ([]models.Booking, error)
	GetPractitionerBookings(ctx context.Context, practitionerID string) ([]models.Booking, error)
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	Bookings  bookingRepo.BookingRepository
	Therapies therapyRepo.TherapyRepository
	Users     userRepo.UserRepository
	Notifier  notification.NotificationService

	// bookingLocks serializes overlapping reschedule sweeps per booking id so
	// a bulk sweep and a single-booking sweep cannot interleave their
	// read-modify-write on the same document.
	bookingLocks sync.Map
}

func (s *DefaultSchedulingService) lockBooking(id string) func() {
	v, _ := s.bookingLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
