package scheduling

import (
	"context"
	"fmt"
	"time"
)

// midnight normalizes a time to local midnight of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// findEarliestDate returns the earliest date, starting today, on which the
// (practitioner, therapy) pair still has free daily capacity. It is a pure
// read: the slot is not reserved, so the caller must persist the booking
// promptly. Two concurrent callers can both observe a free slot and both
// commit; the per-day count is a soft limit.
func (s *DefaultSchedulingService) findEarliestDate(ctx context.Context, practitionerID, therapyID string, capacity int) (time.Time, error) {
	if capacity <= 0 {
		return time.Time{}, NewConfigurationError(fmt.Sprintf("daily capacity must be positive, got %d", capacity))
	}

	candidate := midnight(time.Now())
	for {
		if err := ctx.Err(); err != nil {
			return time.Time{}, err
		}
		count, err := s.Bookings.CountForDay(practitionerID, therapyID, candidate)
		if err != nil {
			return time.Time{}, fmt.Errorf("slot allocation failed: %w", err)
		}
		if count < int64(capacity) {
			return candidate, nil
		}
		candidate = candidate.AddDate(0, 0, 1)
	}
}
