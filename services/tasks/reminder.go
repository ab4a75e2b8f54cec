package tasks

import (
	"encoding/json"

	"ayursutra/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask wraps a session reminder payload into an asynq task.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendReminder, b), nil
}
