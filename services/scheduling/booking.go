package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	therapyRepo "ayursutra/database/repository/therapy"
	"ayursutra/models"

	"github.com/google/uuid"
)

// CreateBooking allocates the earliest free date for the requested
// (practitioner, therapy) pair, expands it into the session plan, persists the
// booking and notifies the patient. The notification fan-out is detached:
// its outcome never affects the returned booking.
func (s *DefaultSchedulingService) CreateBooking(ctx context.Context, actor models.Identity, input CreateBookingInput) (*models.Booking, error) {
	if input.TherapyID == "" {
		return nil, NewValidationError("therapyId is required")
	}
	if input.PractitionerID == "" {
		return nil, NewValidationError("practitionerId is required")
	}

	therapy, err := s.Therapies.GetByID(input.TherapyID)
	if err != nil {
		if errors.Is(err, therapyRepo.ErrNotFound) {
			return nil, NewNotFoundError("therapy not found")
		}
		return nil, err
	}

	assigned, err := s.findEarliestDate(ctx, input.PractitionerID, input.TherapyID, therapy.Capacity())
	if err != nil {
		return nil, err
	}

	sessions, progress, err := buildSessionPlan(assigned, *therapy)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		ID:             uuid.New().String(),
		TherapyID:      input.TherapyID,
		PractitionerID: input.PractitionerID,
		PatientID:      actor.ID,
		AssignedDate:   assigned,
		Sessions:       sessions,
		Progress:       progress,
		Notes:          input.Notes,
		Status:         models.BookingStatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Bookings.Create(booking); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		message := fmt.Sprintf("Your therapy %q has been booked automatically for %s.", therapy.Name, assigned.Format("Mon, 02 Jan 2006"))
		s.Notifier.NotifyPatient(booking.ID, 0, message, "AyurSutra Booking Confirmed")
	}

	return booking, nil
}

// GetPatientBookings lists all bookings made by the given patient.
func (s *DefaultSchedulingService) GetPatientBookings(_ context.Context, patientID string) ([]models.Booking, error) {
	return s.Bookings.GetByPatient(patientID)
}

// GetPractitionerBookings lists all bookings assigned to the given practitioner.
func (s *DefaultSchedulingService) GetPractitionerBookings(_ context.Context, practitionerID string) ([]models.Booking, error) {
	return s.Bookings.GetByPractitioner(practitionerID)
}
