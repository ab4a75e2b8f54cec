package scheduling

import (
	"testing"
	"time"

	"ayursutra/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionForDayCyclesThroughList(t *testing.T) {
	instructions := []string{"fast overnight", "drink warm water", "light meal only"}

	assert.Equal(t, "fast overnight", instructionForDay(instructions, 0, "x"))
	assert.Equal(t, "drink warm water", instructionForDay(instructions, 1, "x"))
	assert.Equal(t, "light meal only", instructionForDay(instructions, 2, "x"))
	assert.Equal(t, "fast overnight", instructionForDay(instructions, 3, "x"))
	assert.Equal(t, "drink warm water", instructionForDay(instructions, 7, "x"))
}

func TestInstructionForDayEmptyListFallsBack(t *testing.T) {
	assert.Equal(t, "fallback", instructionForDay(nil, 0, "fallback"))
	assert.Equal(t, "fallback", instructionForDay([]string{}, 5, "fallback"))
}

func TestBuildSessionPlanDatesAndLength(t *testing.T) {
	assigned := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	therapy := models.Therapy{
		DurationDays:     7,
		PreInstructions:  []string{"pre a", "pre b"},
		PostInstructions: []string{"post a"},
	}

	sessions, progress, err := buildSessionPlan(assigned, therapy)
	require.NoError(t, err)
	require.Len(t, sessions, 7)

	for i, s := range sessions {
		assert.True(t, s.Date.Equal(assigned.AddDate(0, 0, i)), "session %d date", i)
		assert.Equal(t, models.SessionStatusScheduled, s.Status)

		require.Len(t, s.Notifications, 2)
		pre, post := s.Notifications[0], s.Notifications[1]
		assert.Equal(t, models.NotificationPreProcedure, pre.Kind)
		assert.Equal(t, models.NotificationPostProcedure, post.Kind)
		assert.False(t, pre.Sent)
		assert.False(t, post.Sent)
		assert.Nil(t, pre.SentAt)

		// Instruction lists cycle by day index.
		assert.Equal(t, []string{"pre a", "pre b"}[i%2], pre.Message)
		assert.Equal(t, "post a", post.Message)
	}

	assert.Equal(t, 0, progress.CompletedSessions)
	assert.Equal(t, 7, progress.TotalSessions)
}

func TestBuildSessionPlanIsDeterministic(t *testing.T) {
	assigned := time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local)
	therapy := models.Therapy{
		DurationDays:     3,
		PreInstructions:  []string{"p1", "p2"},
		PostInstructions: []string{"q1", "q2", "q3"},
	}

	first, _, err := buildSessionPlan(assigned, therapy)
	require.NoError(t, err)
	second, _, err := buildSessionPlan(assigned, therapy)
	require.NoError(t, err)

	for i := range first {
		assert.True(t, first[i].Date.Equal(second[i].Date))
		assert.Equal(t, first[i].Notifications[0].Message, second[i].Notifications[0].Message)
		assert.Equal(t, first[i].Notifications[1].Message, second[i].Notifications[1].Message)
	}
}

func TestBuildSessionPlanRejectsNonPositiveDuration(t *testing.T) {
	_, _, err := buildSessionPlan(time.Now(), models.Therapy{DurationDays: 0})
	require.Error(t, err)
	assert.Equal(t, CodeConfiguration, ErrorCode(err))
}
