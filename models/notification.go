package models

import "time"

// Notification kinds.
const (
	NotificationPreProcedure  = "pre-procedure"
	NotificationPostProcedure = "post-procedure"
	NotificationInApp         = "in-app"
)

// Notification is an instructional or informational message tied to one
// session. Pre/post stubs are created with the session and flipped to sent
// once a channel actually attempts delivery; in-app records are appended at
// dispatch time.
type Notification struct {
	Kind      string     `bson:"kind" json:"kind"`
	Message   string     `bson:"message" json:"message"`
	Sent      bool       `bson:"sent" json:"sent"`
	SentAt    *time.Time `bson:"sent_at,omitempty" json:"sentAt,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
}

// ReminderPayload is the body of a queued session reminder task.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	SessionIndex int    `json:"sessionIndex"`
	Message      string `json:"message"`
}
