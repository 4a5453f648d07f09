package subscription

import (
	"time"

	"github.com/fitpulsehq/gym-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Activate moves the subscription to active unconditionally. The at-most-one
// active subscription per member invariant is enforced by the storage layer's
// partial unique index, so callers must surface a save failure as a conflict.
func Activate(s *models.Subscription) {
	s.Status = string(StatusActive)
}

// Cancel moves the subscription to cancelled from any state. Idempotent.
func Cancel(s *models.Subscription) {
	s.Status = string(StatusCancelled)
}

// CheckExpiry transitions active -> expired once end_date is strictly in the
// past. Idempotent; reports whether the status changed.
func CheckExpiry(s *models.Subscription, today time.Time) bool {
	if Status(s.Status) != StatusActive {
		return false
	}
	if !dateOf(s.EndDate).Before(dateOf(today)) {
		return false
	}
	s.Status = string(StatusExpired)
	return true
}

// DaysRemaining is the number of whole days until end_date, never negative.
func DaysRemaining(s *models.Subscription, today time.Time) int {
	days := int(dateOf(s.EndDate).Sub(dateOf(today)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
