package models

import "time"

// Booking statuses.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in-progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Session statuses.
const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
	SessionStatusMissed    = "missed"
)

// Booking represents a patient's course of a therapy with one practitioner.
// AssignedDate is the system-chosen start date (midnight-normalized); sessions
// are generated at creation time, one per day of the therapy's duration.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	TherapyID      string    `bson:"therapy_id" json:"therapyId"`
	PractitionerID string    `bson:"practitioner_id" json:"practitionerId"`
	PatientID      string    `bson:"patient_id" json:"patientId"`
	AssignedDate   time.Time `bson:"assigned_date" json:"assignedDate"`
	Sessions       []Session `bson:"sessions" json:"sessions"`
	Progress       Progress  `bson:"progress" json:"progress"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// Session is one day's occurrence within a booking's therapy course.
type Session struct {
	Date          time.Time      `bson:"date" json:"date"`
	Status        string         `bson:"status" json:"status"`
	Notifications []Notification `bson:"notifications" json:"notifications"`

	// Feedback fields, filled in by the patient after a session.
	FeedbackText      string `bson:"feedback_text,omitempty" json:"feedbackText,omitempty"`
	ImprovementRating int    `bson:"improvement_rating,omitempty" json:"improvementRating,omitempty"`
	Pain              int    `bson:"pain,omitempty" json:"pain,omitempty"`
	Stress            int    `bson:"stress,omitempty" json:"stress,omitempty"`
	Energy            int    `bson:"energy,omitempty" json:"energy,omitempty"`
	Sleep             string `bson:"sleep,omitempty" json:"sleep,omitempty"`
}

// Progress tracks how far a booking has advanced through its sessions.
type Progress struct {
	CompletedSessions int    `bson:"completed_sessions" json:"completedSessions"`
	TotalSessions     int    `bson:"total_sessions" json:"totalSessions"`
	RecoveryNotes     string `bson:"recovery_notes,omitempty" json:"recoveryNotes,omitempty"`
}
