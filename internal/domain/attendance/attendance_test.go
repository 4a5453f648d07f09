package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitpulsehq/gym-manager/internal/models"
)

func TestCheckout(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("stamps check-out once", func(t *testing.T) {
		a := &models.Attendance{CheckIn: checkIn}
		now := checkIn.Add(90 * time.Minute)

		assert.True(t, Checkout(a, now))
		require.NotNil(t, a.CheckOut)
		assert.Equal(t, now, *a.CheckOut)
	})

	t.Run("second checkout keeps the original timestamp", func(t *testing.T) {
		a := &models.Attendance{CheckIn: checkIn}
		first := checkIn.Add(time.Hour)

		require.True(t, Checkout(a, first))
		assert.False(t, Checkout(a, first.Add(time.Hour)))
		assert.Equal(t, first, *a.CheckOut)
	})
}

func TestDurationHours(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("rounds to two decimals", func(t *testing.T) {
		out := checkIn.Add(90 * time.Minute)
		a := &models.Attendance{CheckIn: checkIn, CheckOut: &out}

		hours, ok := DurationHours(a)

		assert.True(t, ok)
		assert.Equal(t, 1.5, hours)
	})

	t.Run("uneven visit rounds", func(t *testing.T) {
		out := checkIn.Add(100 * time.Minute)
		a := &models.Attendance{CheckIn: checkIn, CheckOut: &out}

		hours, ok := DurationHours(a)

		assert.True(t, ok)
		assert.Equal(t, 1.67, hours)
	})

	t.Run("open visit has no duration", func(t *testing.T) {
		a := &models.Attendance{CheckIn: checkIn}

		_, ok := DurationHours(a)

		assert.False(t, ok)
		assert.False(t, IsCheckedOut(a))
	})
}
