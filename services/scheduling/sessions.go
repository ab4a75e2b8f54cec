package scheduling

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "ayursutra/database/repository/booking"
	"ayursutra/models"
)

// MarkSessionComplete records a practitioner marking one session done, bumps
// progress, and dispatches the session's post-procedure advice to the
// patient. The dispatch is detached; the caller gets the updated booking
// regardless of delivery outcome.
func (s *DefaultSchedulingService) MarkSessionComplete(ctx context.Context, actor models.Identity, bookingID string, sessionIndex int) (*models.Booking, error) {
	booking, session, err := s.sessionForUpdate(actor, bookingID, sessionIndex)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionStatusCompleted {
		return nil, NewConflictError("session already completed")
	}

	if err := s.Bookings.UpdateSessionStatus(bookingID, sessionIndex, models.SessionStatusCompleted); err != nil {
		return nil, err
	}
	booking.Sessions[sessionIndex].Status = models.SessionStatusCompleted

	booking.Progress.CompletedSessions++
	if err := s.Bookings.UpdateProgress(bookingID, booking.Progress); err != nil {
		return nil, err
	}
	if booking.Progress.CompletedSessions >= booking.Progress.TotalSessions {
		booking.Status = models.BookingStatusCompleted
		if err := s.Bookings.UpdateStatus(bookingID, models.BookingStatusCompleted); err != nil {
			return nil, err
		}
	}

	if s.Notifier != nil {
		therapyName := "therapy"
		if therapy, terr := s.Therapies.GetByID(booking.TherapyID); terr == nil {
			therapyName = therapy.Name
		}
		message := fmt.Sprintf("Your %s session is completed. Post-procedure advice: %s",
			therapyName, stubMessage(booking.Sessions[sessionIndex], models.NotificationPostProcedure))
		s.Notifier.DeliverSessionNotice(bookingID, sessionIndex, models.NotificationPostProcedure, "Therapy Completed", message)
	}

	return booking, nil
}

// MarkSessionMissed records a practitioner marking one session as missed.
// The session keeps its date; a later reschedule sweep will not touch it.
func (s *DefaultSchedulingService) MarkSessionMissed(ctx context.Context, actor models.Identity, bookingID string, sessionIndex int) (*models.Booking, error) {
	booking, session, err := s.sessionForUpdate(actor, bookingID, sessionIndex)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionStatusCompleted {
		return nil, NewConflictError("completed session cannot be marked missed")
	}

	if err := s.Bookings.UpdateSessionStatus(bookingID, sessionIndex, models.SessionStatusMissed); err != nil {
		return nil, err
	}
	booking.Sessions[sessionIndex].Status = models.SessionStatusMissed
	return booking, nil
}

func (s *DefaultSchedulingService) sessionForUpdate(actor models.Identity, bookingID string, sessionIndex int) (*models.Booking, *models.Session, error) {
	if actor.Role != models.RolePractitioner {
		return nil, nil, NewForbiddenError("only a practitioner may update sessions")
	}

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, nil, NewNotFoundError("booking not found")
		}
		return nil, nil, err
	}
	if sessionIndex < 0 || sessionIndex >= len(booking.Sessions) {
		return nil, nil, NewNotFoundError(fmt.Sprintf("session %d does not exist", sessionIndex))
	}
	return booking, &booking.Sessions[sessionIndex], nil
}

func stubMessage(session models.Session, kind string) string {
	for _, n := range session.Notifications {
		if n.Kind == kind {
			return n.Message
		}
	}
	return ""
}
