package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fitpulsehq/gym-manager/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCheckExpiry(t *testing.T) {
	t.Run("active past end date expires", func(t *testing.T) {
		s := &models.Subscription{
			Status:  string(StatusActive),
			EndDate: date(2025, 3, 10),
		}

		changed := CheckExpiry(s, date(2025, 3, 11))

		assert.True(t, changed)
		assert.Equal(t, string(StatusExpired), s.Status)
	})

	t.Run("end date today is still active", func(t *testing.T) {
		s := &models.Subscription{
			Status:  string(StatusActive),
			EndDate: date(2025, 3, 10),
		}

		changed := CheckExpiry(s, date(2025, 3, 10))

		assert.False(t, changed)
		assert.Equal(t, string(StatusActive), s.Status)
	})

	t.Run("idempotent on expired", func(t *testing.T) {
		s := &models.Subscription{
			Status:  string(StatusExpired),
			EndDate: date(2025, 3, 10),
		}

		changed := CheckExpiry(s, date(2025, 4, 1))

		assert.False(t, changed)
		assert.Equal(t, string(StatusExpired), s.Status)
	})

	t.Run("pending and cancelled never expire", func(t *testing.T) {
		for _, status := range []Status{StatusPending, StatusCancelled} {
			s := &models.Subscription{
				Status:  string(status),
				EndDate: date(2025, 3, 10),
			}

			changed := CheckExpiry(s, date(2025, 4, 1))

			assert.False(t, changed)
			assert.Equal(t, string(status), s.Status)
		}
	})

	t.Run("compares calendar dates not clock times", func(t *testing.T) {
		s := &models.Subscription{
			Status:  string(StatusActive),
			EndDate: date(2025, 3, 10),
		}

		// Late evening on the end date must not expire the subscription.
		lateEvening := time.Date(2025, 3, 10, 23, 55, 0, 0, time.UTC)
		changed := CheckExpiry(s, lateEvening)

		assert.False(t, changed)
	})
}

func TestDaysRemaining(t *testing.T) {
	s := &models.Subscription{EndDate: date(2025, 3, 20)}

	assert.Equal(t, 10, DaysRemaining(s, date(2025, 3, 10)))
	assert.Equal(t, 0, DaysRemaining(s, date(2025, 3, 20)))

	// Never negative once the window is over.
	assert.Equal(t, 0, DaysRemaining(s, date(2025, 4, 1)))
}

func TestActivateAndCancel(t *testing.T) {
	s := &models.Subscription{Status: string(StatusPending)}

	Activate(s)
	assert.Equal(t, string(StatusActive), s.Status)

	Cancel(s)
	assert.Equal(t, string(StatusCancelled), s.Status)

	// Cancel is idempotent.
	Cancel(s)
	assert.Equal(t, string(StatusCancelled), s.Status)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusActive))
	assert.True(t, IsTerminal(StatusExpired))
	assert.True(t, IsTerminal(StatusCancelled))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
