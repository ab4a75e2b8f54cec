package scheduling

import (
	"context"
	"testing"
	"time"

	"ayursutra/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTherapy() *models.Therapy {
	return &models.Therapy{
		ID:               "ther-1",
		Name:             "Abhyanga",
		DurationDays:     5,
		DailyCapacity:    5,
		PreInstructions:  []string{"Fast for 2 hours", "Hydrate well"},
		PostInstructions: []string{"Rest for 30 minutes"},
		IsActive:         true,
	}
}

func newBookingTestService(therapies ...*models.Therapy) (*DefaultSchedulingService, *memBookingRepo, *mockNotifier) {
	repo := newMemBookingRepo()
	notifier := &mockNotifier{}
	svc := &DefaultSchedulingService{
		Bookings:  repo,
		Therapies: newMemTherapyRepo(therapies...),
		Users:     newMemUserRepo(),
		Notifier:  notifier,
	}
	return svc, repo, notifier
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _ := newBookingTestService(testTherapy())
	patient := models.Identity{ID: "pat-1", Role: models.RolePatient}

	_, err := svc.CreateBooking(context.Background(), patient, CreateBookingInput{PractitionerID: "prac-1"})
	require.Error(t, err)
	assert.Equal(t, CodeValidation, ErrorCode(err))

	_, err = svc.CreateBooking(context.Background(), patient, CreateBookingInput{TherapyID: "ther-1"})
	require.Error(t, err)
	assert.Equal(t, CodeValidation, ErrorCode(err))
}

func TestCreateBookingTherapyNotFound(t *testing.T) {
	svc, _, _ := newBookingTestService()
	patient := models.Identity{ID: "pat-1", Role: models.RolePatient}

	_, err := svc.CreateBooking(context.Background(), patient, CreateBookingInput{
		TherapyID:      "missing",
		PractitionerID: "prac-1",
	})
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestCreateBookingAssignsEarliestDateAndPlan(t *testing.T) {
	svc, repo, notifier := newBookingTestService(testTherapy())
	patient := models.Identity{ID: "pat-1", Role: models.RolePatient}
	today := midnight(time.Now())

	// Four existing bookings for the pair leave one slot open today.
	for i := 0; i < 4; i++ {
		seedBooking(t, repo, "prac-1", "ther-1", today)
	}

	input := CreateBookingInput{TherapyID: "ther-1", PractitionerID: "prac-1", Notes: "first course"}
	booking, err := svc.CreateBooking(context.Background(), patient, input)
	require.NoError(t, err)

	assert.True(t, booking.AssignedDate.Equal(today))
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "pat-1", booking.PatientID)
	assert.Equal(t, "first course", booking.Notes)
	require.Len(t, booking.Sessions, 5)
	assert.Equal(t, 5, booking.Progress.TotalSessions)
	assert.Equal(t, 0, booking.Progress.CompletedSessions)
	for i, s := range booking.Sessions {
		assert.True(t, s.Date.Equal(today.AddDate(0, 0, i)))
		assert.Equal(t, models.SessionStatusScheduled, s.Status)
		require.Len(t, s.Notifications, 2)
		assert.False(t, s.Notifications[0].Sent)
		assert.False(t, s.Notifications[1].Sent)
	}

	stored, err := repo.GetByID(booking.ID)
	require.NoError(t, err)
	assert.True(t, stored.AssignedDate.Equal(today))

	require.Len(t, notifier.patient, 1)
	assert.Contains(t, notifier.patient[0], "Abhyanga")
	assert.Contains(t, notifier.patient[0], "booked automatically")
}

func TestCreateBookingOverflowsToNextDay(t *testing.T) {
	svc, _, _ := newBookingTestService(testTherapy())
	patient := models.Identity{ID: "pat-1", Role: models.RolePatient}
	today := midnight(time.Now())
	input := CreateBookingInput{TherapyID: "ther-1", PractitionerID: "prac-1"}

	// Capacity is 5: the first five bookings fill today, the sixth rolls over.
	for i := 0; i < 5; i++ {
		booking, err := svc.CreateBooking(context.Background(), patient, input)
		require.NoError(t, err)
		assert.True(t, booking.AssignedDate.Equal(today), "booking %d", i)
	}

	booking, err := svc.CreateBooking(context.Background(), patient, input)
	require.NoError(t, err)
	assert.True(t, booking.AssignedDate.Equal(today.AddDate(0, 0, 1)))
}

func TestCreateBookingSeparatePairsDoNotContend(t *testing.T) {
	second := testTherapy()
	second.ID = "ther-2"
	second.DailyCapacity = 1
	svc, _, _ := newBookingTestService(testTherapy(), second)
	patient := models.Identity{ID: "pat-1", Role: models.RolePatient}
	today := midnight(time.Now())

	first, err := svc.CreateBooking(context.Background(), patient, CreateBookingInput{TherapyID: "ther-2", PractitionerID: "prac-1"})
	require.NoError(t, err)
	assert.True(t, first.AssignedDate.Equal(today))

	// Same therapy, different practitioner: independent capacity.
	other, err := svc.CreateBooking(context.Background(), patient, CreateBookingInput{TherapyID: "ther-2", PractitionerID: "prac-2"})
	require.NoError(t, err)
	assert.True(t, other.AssignedDate.Equal(today))

	// Same practitioner again is full for today.
	rolled, err := svc.CreateBooking(context.Background(), patient, CreateBookingInput{TherapyID: "ther-2", PractitionerID: "prac-1"})
	require.NoError(t, err)
	assert.True(t, rolled.AssignedDate.Equal(today.AddDate(0, 0, 1)))
}
