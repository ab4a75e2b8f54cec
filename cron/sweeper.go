package cron

import (
	"context"
	"fmt"
	"time"

	"ayursutra/config"
	bookingRepo "ayursutra/database/repository/booking"
	therapyRepo "ayursutra/database/repository/therapy"
	"ayursutra/models"
	"ayursutra/services/scheduling"
	"ayursutra/services/tasks"
	"ayursutra/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderEnqueuer queues one reminder task. *asynq.Client satisfies it.
type ReminderEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Sweeper runs the periodic maintenance pass: the bulk reschedule sweep for
// overdue sessions and the pre-session reminder scan.
type Sweeper struct {
	Scheduler scheduling.SchedulingService
	Bookings  bookingRepo.BookingRepository
	Therapies therapyRepo.TherapyRepository
	Queue     ReminderEnqueuer
}

// NewReminderQueueClient builds the asynq client used to enqueue reminders.
func NewReminderQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
}

// Start loops until ctx is cancelled, running one sweep per interval tick.
func (sw *Sweeper) Start(ctx context.Context, interval time.Duration) {
	logger := utils.GetLogger()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Sweeper shutdown signal received")
			return
		case <-ticker.C:
			sw.runOnce(ctx)
		}
	}
}

func (sw *Sweeper) runOnce(ctx context.Context) {
	logger := utils.GetLogger()

	updated, changed, err := sw.Scheduler.RescheduleAll(ctx)
	if err != nil {
		logger.Error("Reschedule sweep failed", zap.Error(err))
	} else if changed {
		logger.Info("Reschedule sweep moved overdue sessions", zap.Int("bookings", len(updated)))
	}

	if err := sw.enqueueReminders(ctx); err != nil {
		logger.Error("Reminder scan failed", zap.Error(err))
	}
}

// enqueueReminders finds scheduled sessions starting within the lookahead
// window whose pre-procedure stub is still unsent and queues one reminder
// task per session.
func (sw *Sweeper) enqueueReminders(ctx context.Context) error {
	logger := utils.GetLogger()

	now := time.Now()
	lookahead := config.AppConfig.ReminderLookahead
	if lookahead <= 0 {
		lookahead = time.Hour
	}
	upcoming := now.Add(lookahead)

	bookings, err := sw.Bookings.GetWithSessionsBetween(now, upcoming)
	if err != nil {
		return err
	}

	for _, booking := range bookings {
		therapyName := "therapy"
		if therapy, terr := sw.Therapies.GetByID(booking.TherapyID); terr == nil {
			therapyName = therapy.Name
		}

		for i, session := range booking.Sessions {
			if session.Status != models.SessionStatusScheduled {
				continue
			}
			if session.Date.Before(now) || session.Date.After(upcoming) {
				continue
			}
			if preStubSent(session) {
				continue
			}

			message := fmt.Sprintf("Reminder: Your %s session is coming up. Pre-procedure: %s",
				therapyName, preStubMessage(session))
			task, err := tasks.NewReminderTask(models.ReminderPayload{
				BookingID:    booking.ID,
				SessionIndex: i,
				Message:      message,
			})
			if err != nil {
				logger.Error("Failed to build reminder task", zap.Error(err))
				continue
			}
			if _, err := sw.Queue.EnqueueContext(ctx, task); err != nil {
				logger.Error("Failed to enqueue reminder",
					zap.String("bookingId", booking.ID),
					zap.Int("sessionIndex", i),
					zap.Error(err))
			}
		}
	}
	return nil
}

func preStubSent(session models.Session) bool {
	for _, n := range session.Notifications {
		if n.Kind == models.NotificationPreProcedure {
			return n.Sent
		}
	}
	return false
}

func preStubMessage(session models.Session) string {
	for _, n := range session.Notifications {
		if n.Kind == models.NotificationPreProcedure {
			return n.Message
		}
	}
	return "follow your practitioner's guidance"
}
