package scheduling

import (
	"context"
	"testing"
	"time"

	"ayursutra/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedBooking(id string, sessions ...models.Session) *models.Booking {
	return &models.Booking{
		ID:       id,
		Status:   models.BookingStatusConfirmed,
		Sessions: sessions,
	}
}

func TestRescheduleSessionsCollapsesOverdueOntoTomorrow(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.Local)
	tomorrow := now.AddDate(0, 0, 1)
	future := now.Add(2 * time.Hour)
	sessions := []models.Session{
		{Date: now.AddDate(0, 0, -3), Status: models.SessionStatusScheduled},
		{Date: now.AddDate(0, 0, -2), Status: models.SessionStatusScheduled},
		{Date: future, Status: models.SessionStatusScheduled},
	}

	changed := rescheduleSessions(sessions, now)
	require.True(t, changed)

	// Sessions overdue by different amounts land on the same tomorrow,
	// carrying the sweep's time of day.
	assert.True(t, sessions[0].Date.Equal(tomorrow))
	assert.True(t, sessions[1].Date.Equal(tomorrow))
	assert.True(t, sessions[0].Date.Equal(sessions[1].Date))
	// The future session is untouched.
	assert.True(t, sessions[2].Date.Equal(future))
}

func TestRescheduleSessionsNoOpForNonScheduled(t *testing.T) {
	now := time.Now()
	overdue := now.AddDate(0, 0, -5)
	sessions := []models.Session{
		{Date: overdue, Status: models.SessionStatusCompleted},
		{Date: overdue, Status: models.SessionStatusMissed},
		{Date: now.AddDate(0, 0, 2), Status: models.SessionStatusScheduled},
	}

	changed := rescheduleSessions(sessions, now)
	assert.False(t, changed)
	assert.True(t, sessions[0].Date.Equal(overdue))
	assert.True(t, sessions[1].Date.Equal(overdue))
}

func TestRescheduleAllMutatesOnlyOverdueConfirmedBookings(t *testing.T) {
	repo := newMemBookingRepo()
	svc := &DefaultSchedulingService{Bookings: repo}
	now := time.Now()

	require.NoError(t, repo.Create(confirmedBooking("overdue",
		models.Session{Date: now.AddDate(0, 0, -1), Status: models.SessionStatusScheduled})))
	require.NoError(t, repo.Create(confirmedBooking("current",
		models.Session{Date: now.AddDate(0, 0, 1), Status: models.SessionStatusScheduled})))

	// A cancelled booking with overdue sessions is outside the sweep.
	cancelled := confirmedBooking("cancelled",
		models.Session{Date: now.AddDate(0, 0, -1), Status: models.SessionStatusScheduled})
	cancelled.Status = models.BookingStatusCancelled
	require.NoError(t, repo.Create(cancelled))

	updated, changed, err := svc.RescheduleAll(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, updated, 1)
	assert.Equal(t, "overdue", updated[0].ID)

	stored, err := repo.GetByID("overdue")
	require.NoError(t, err)
	assert.WithinDuration(t, now.AddDate(0, 0, 1), stored.Sessions[0].Date, time.Minute)

	untouched, err := repo.GetByID("cancelled")
	require.NoError(t, err)
	assert.True(t, untouched.Sessions[0].Date.Equal(now.AddDate(0, 0, -1)))
}

func TestRescheduleAllReportsNoChange(t *testing.T) {
	repo := newMemBookingRepo()
	svc := &DefaultSchedulingService{Bookings: repo}

	require.NoError(t, repo.Create(confirmedBooking("b1",
		models.Session{Date: time.Now().AddDate(0, 0, 3), Status: models.SessionStatusScheduled})))

	updated, changed, err := svc.RescheduleAll(context.Background())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, updated)
}

func TestRescheduleBookingSingle(t *testing.T) {
	repo := newMemBookingRepo()
	svc := &DefaultSchedulingService{Bookings: repo}
	now := time.Now()

	require.NoError(t, repo.Create(confirmedBooking("b1",
		models.Session{Date: now.AddDate(0, 0, -2), Status: models.SessionStatusScheduled},
		models.Session{Date: now.AddDate(0, 0, 4), Status: models.SessionStatusScheduled})))

	booking, changed, err := svc.RescheduleBooking(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.WithinDuration(t, now.AddDate(0, 0, 1), booking.Sessions[0].Date, time.Minute)
	assert.True(t, booking.Sessions[1].Date.Equal(now.AddDate(0, 0, 4)))
}

func TestRescheduleBookingNotFound(t *testing.T) {
	svc := &DefaultSchedulingService{Bookings: newMemBookingRepo()}

	_, _, err := svc.RescheduleBooking(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestRescheduleBookingRequiresConfirmedStatus(t *testing.T) {
	repo := newMemBookingRepo()
	svc := &DefaultSchedulingService{Bookings: repo}

	pending := confirmedBooking("b1",
		models.Session{Date: time.Now().AddDate(0, 0, -1), Status: models.SessionStatusScheduled})
	pending.Status = models.BookingStatusPending
	require.NoError(t, repo.Create(pending))

	_, _, err := svc.RescheduleBooking(context.Background(), "b1")
	require.Error(t, err)
	assert.Equal(t, CodeConflict, ErrorCode(err))
}
