package notification

import (
	"context"
	"sync"
	"time"

	"ayursutra/models"
	"ayursutra/utils"

	"go.uber.org/zap"
)

// NotifyPatient fans a message out to the patient's channels without
// blocking the caller. Channel failures are logged and isolated from each
// other; partial delivery is a normal terminal state.
func (s *DefaultNotificationService) NotifyPatient(bookingID string, sessionIndex int, message, subject string) {
	go s.dispatch(bookingID, sessionIndex, message, subject)
}

// DeliverSessionNotice sends a session's pre/post-procedure notice over SMS
// and email, detached from the caller, and marks the stub sent afterwards.
func (s *DefaultNotificationService) DeliverSessionNotice(bookingID string, sessionIndex int, kind, subject, message string) {
	go s.deliverNotice(bookingID, sessionIndex, kind, subject, message)
}

func (s *DefaultNotificationService) dispatch(bookingID string, sessionIndex int, message, subject string) {
	logger := utils.GetLogger()

	patient, ok := s.resolvePatient(bookingID)
	if !ok {
		return
	}

	var wg sync.WaitGroup
	attempts := 0
	run := func(channel string, fn func() error) {
		wg.Add(1)
		attempts++
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Error("notification channel panicked",
						zap.String("channel", channel), zap.Any("panic", r))
				}
			}()
			if err := fn(); err != nil {
				logger.Error("notification channel failed",
					zap.String("channel", channel),
					zap.String("bookingId", bookingID),
					zap.Error(err))
			}
		}()
	}

	// In-app is always attempted.
	run("in-app", func() error {
		return s.appendInApp(bookingID, sessionIndex, message)
	})
	if patient.PhoneNumber != "" {
		phone := normalizePhone(patient.PhoneNumber, s.countryCode())
		run("sms", func() error {
			return s.SMS.SendSMS(context.Background(), phone, message)
		})
	}
	if patient.Email != "" {
		email := patient.Email
		run("email", func() error {
			return s.Email.SendEmail(context.Background(), email, subject, message)
		})
	}

	wg.Wait()
	logger.Info("notification tasks finished",
		zap.String("bookingId", bookingID),
		zap.Int("attempts", attempts))
}

func (s *DefaultNotificationService) deliverNotice(bookingID string, sessionIndex int, kind, subject, message string) {
	logger := utils.GetLogger()

	patient, ok := s.resolvePatient(bookingID)
	if !ok {
		return
	}

	var wg sync.WaitGroup
	run := func(channel string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Error("notification channel panicked",
						zap.String("channel", channel), zap.Any("panic", r))
				}
			}()
			if err := fn(); err != nil {
				logger.Error("notification channel failed",
					zap.String("channel", channel),
					zap.String("bookingId", bookingID),
					zap.Error(err))
			}
		}()
	}

	if patient.PhoneNumber != "" {
		phone := normalizePhone(patient.PhoneNumber, s.countryCode())
		run("sms", func() error {
			return s.SMS.SendSMS(context.Background(), phone, message)
		})
	}
	if patient.Email != "" {
		email := patient.Email
		run("email", func() error {
			return s.Email.SendEmail(context.Background(), email, subject, message)
		})
	}
	wg.Wait()

	// The stub is flipped once the attempts settle, whether or not a channel
	// succeeded; failed attempts are not retried.
	if err := s.Bookings.MarkNotificationSent(bookingID, sessionIndex, kind, time.Now()); err != nil {
		logger.Error("failed to mark notification sent",
			zap.String("bookingId", bookingID),
			zap.Int("sessionIndex", sessionIndex),
			zap.String("kind", kind),
			zap.Error(err))
	}
}

func (s *DefaultNotificationService) resolvePatient(bookingID string) (*models.User, bool) {
	logger := utils.GetLogger()

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		logger.Error("notification: booking lookup failed",
			zap.String("bookingId", bookingID), zap.Error(err))
		return nil, false
	}
	patient, err := s.Users.GetByID(booking.PatientID)
	if err != nil {
		logger.Error("notification: patient lookup failed",
			zap.String("bookingId", bookingID),
			zap.String("patientId", booking.PatientID),
			zap.Error(err))
		return nil, false
	}
	return patient, true
}

func (s *DefaultNotificationService) appendInApp(bookingID string, sessionIndex int, message string) error {
	now := time.Now()
	record := models.Notification{
		Kind:      models.NotificationInApp,
		Message:   message,
		Sent:      true,
		SentAt:    &now,
		CreatedAt: now,
	}
	return s.Bookings.AppendSessionNotification(bookingID, sessionIndex, record)
}
