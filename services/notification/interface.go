package notification

import (
	"context"

	bookingRepo "ayursutra/database/repository/booking"
	userRepo "ayursutra/database/repository/user"
)

// SMSSender delivers one SMS. Implementations are best-effort external
// calls; a failure is the caller's to log, never to propagate.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// EmailSender delivers one email.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, message string) error
}

// NotificationService fans messages out to a patient's channels. Both
// methods return immediately; delivery happens on detached goroutines and
// outcomes are only ever logged.
type NotificationService interface {
	// NotifyPatient sends a free-form message to the patient of a booking:
	// an in-app record is always appended to the target session, SMS and
	// email are attempted when the patient has a phone number or email.
	NotifyPatient(bookingID string, sessionIndex int, message, subject string)
	// DeliverSessionNotice delivers a session's pre/post-procedure notice
	// over SMS and email and flips the matching notification stub to sent
	// once the attempts have settled.
	DeliverSessionNotice(bookingID string, sessionIndex int, kind, subject, message string)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	SMS      SMSSender
	Email    EmailSender
}
