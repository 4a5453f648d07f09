package attendance

import (
	"math"
	"time"

	"github.com/fitpulsehq/gym-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Checkout stamps the check-out time. Reports false when the record is
// already checked out; the existing timestamp is left untouched.
func Checkout(a *models.Attendance, now time.Time) bool {
	if a.CheckOut != nil {
		return false
	}
	a.CheckOut = &now
	return true
}

func IsCheckedOut(a *models.Attendance) bool {
	return a.CheckOut != nil
}

// DurationHours is the visit length in hours rounded to two decimals.
// ok is false while the member is still checked in.
func DurationHours(a *models.Attendance) (hours float64, ok bool) {
	if a.CheckOut == nil {
		return 0, false
	}
	h := a.CheckOut.Sub(a.CheckIn).Hours()
	return math.Round(h*100) / 100, true
}
