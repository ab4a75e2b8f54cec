package scheduling

import (
	"fmt"
	"time"

	"ayursutra/models"
)

// instructionForDay selects the instruction text for a given day index,
// cycling through the list when the course outlasts it. Pure function.
func instructionForDay(instructions []string, dayIndex int, fallback string) string {
	if len(instructions) == 0 {
		return fallback
	}
	return instructions[dayIndex%len(instructions)]
}

// buildSessionPlan expands an assigned start date and a therapy's duration
// into the ordered session list: session i is dated assigned+i days, starts
// scheduled, and carries unsent pre/post-procedure notification stubs whose
// messages cycle through the therapy's instruction lists.
func buildSessionPlan(assigned time.Time, therapy models.Therapy) ([]models.Session, models.Progress, error) {
	if therapy.DurationDays <= 0 {
		return nil, models.Progress{}, NewConfigurationError(fmt.Sprintf("therapy duration must be positive, got %d", therapy.DurationDays))
	}

	now := time.Now()
	sessions := make([]models.Session, 0, therapy.DurationDays)
	for i := 0; i < therapy.DurationDays; i++ {
		pre := instructionForDay(therapy.PreInstructions, i, "Follow your practitioner's pre-procedure guidance.")
		post := instructionForDay(therapy.PostInstructions, i, "Follow your practitioner's post-procedure guidance.")
		sessions = append(sessions, models.Session{
			Date:   assigned.AddDate(0, 0, i),
			Status: models.SessionStatusScheduled,
			Notifications: []models.Notification{
				{Kind: models.NotificationPreProcedure, Message: pre, CreatedAt: now},
				{Kind: models.NotificationPostProcedure, Message: post, CreatedAt: now},
			},
		})
	}

	progress := models.Progress{
		CompletedSessions: 0,
		TotalSessions:     therapy.DurationDays,
	}
	return sessions, progress, nil
}
