package scheduling

import (
	"context"
	"errors"
	"time"

	bookingRepo "ayursutra/database/repository/booking"
	"ayursutra/models"
)

// rescheduleSessions applies the sweep rule to a booking's sessions in place:
// a scheduled session whose date has passed is moved to tomorrow relative to
// the sweep moment, keeping the sweep's time of day. Sessions overdue by
// different amounts all land on the same tomorrow, so a neglected booking
// collapses onto one date; that is the intended behavior of the sweep, not
// an accident of this implementation.
func rescheduleSessions(sessions []models.Session, now time.Time) bool {
	tomorrow := now.AddDate(0, 0, 1)
	changed := false
	for i := range sessions {
		if sessions[i].Status == models.SessionStatusScheduled && sessions[i].Date.Before(now) {
			sessions[i].Date = tomorrow
			changed = true
		}
	}
	return changed
}

// RescheduleAll sweeps every confirmed booking, moving overdue scheduled
// sessions forward. It returns the bookings that were actually mutated and
// whether any change occurred. No capacity re-check is performed; the
// reschedule path is deliberately decoupled from the slot allocator.
func (s *DefaultSchedulingService) RescheduleAll(ctx context.Context) ([]models.Booking, bool, error) {
	bookings, err := s.Bookings.GetByStatus(models.BookingStatusConfirmed)
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	var updated []models.Booking
	for i := range bookings {
		if err := ctx.Err(); err != nil {
			return updated, len(updated) > 0, err
		}
		b := bookings[i]
		unlock := s.lockBooking(b.ID)
		if rescheduleSessions(b.Sessions, now) {
			if err := s.Bookings.ReplaceSessions(b.ID, b.Sessions); err != nil {
				unlock()
				return updated, len(updated) > 0, err
			}
			updated = append(updated, b)
		}
		unlock()
	}
	return updated, len(updated) > 0, nil
}

// RescheduleBooking applies the same sweep rule to a single booking.
func (s *DefaultSchedulingService) RescheduleBooking(_ context.Context, bookingID string) (*models.Booking, bool, error) {
	unlock := s.lockBooking(bookingID)
	defer unlock()

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, false, NewNotFoundError("booking not found")
		}
		return nil, false, err
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, false, NewConflictError("booking must be confirmed first")
	}

	if !rescheduleSessions(booking.Sessions, time.Now()) {
		return booking, false, nil
	}
	if err := s.Bookings.ReplaceSessions(booking.ID, booking.Sessions); err != nil {
		return nil, false, err
	}
	return booking, true, nil
}
