package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

func TestComplete(t *testing.T) {
	t.Run("pending completes and stamps completed_at", func(t *testing.T) {
		p := &models.Payment{Status: string(StatusPending)}
		now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

		err := Complete(p, now)

		require.NoError(t, err)
		assert.Equal(t, string(StatusCompleted), p.Status)
		require.NotNil(t, p.CompletedAt)
		assert.Equal(t, now, *p.CompletedAt)
	})

	t.Run("non-pending is rejected", func(t *testing.T) {
		for _, status := range []Status{StatusCompleted, StatusFailed, StatusRefunded} {
			p := &models.Payment{Status: string(status)}

			err := Complete(p, time.Now())

			assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			assert.Equal(t, string(status), p.Status)
			assert.Nil(t, p.CompletedAt)
		}
	})
}

func TestFail(t *testing.T) {
	t.Run("appends failure reason to notes", func(t *testing.T) {
		p := &models.Payment{
			Status: string(StatusPending),
			Notes:  "front desk entry",
		}

		err := Fail(p, "card declined")

		require.NoError(t, err)
		assert.Equal(t, string(StatusFailed), p.Status)
		assert.Equal(t, "front desk entry\nFailure reason: card declined", p.Notes)
	})

	t.Run("empty notes get no leading newline", func(t *testing.T) {
		p := &models.Payment{Status: string(StatusPending)}

		err := Fail(p, "card declined")

		require.NoError(t, err)
		assert.Equal(t, "Failure reason: card declined", p.Notes)
	})

	t.Run("no reason leaves notes alone", func(t *testing.T) {
		p := &models.Payment{
			Status: string(StatusPending),
			Notes:  "front desk entry",
		}

		err := Fail(p, "")

		require.NoError(t, err)
		assert.Equal(t, "front desk entry", p.Notes)
	})

	t.Run("non-pending is rejected", func(t *testing.T) {
		p := &models.Payment{Status: string(StatusCompleted)}

		err := Fail(p, "too late")

		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Equal(t, string(StatusCompleted), p.Status)
	})
}

func TestTransactionID(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 45, 0, time.UTC)

	assert.Equal(t, "TXN2025031014304542", TransactionID(now, 42))
	assert.Equal(t, "TXN2025031014304542-abc123", Disambiguate(TransactionID(now, 42), "abc123"))
}

func TestValidMethod(t *testing.T) {
	for _, m := range []Method{MethodCash, MethodCard, MethodOnline, MethodEsewa} {
		assert.True(t, ValidMethod(m))
	}
	assert.False(t, ValidMethod(Method("crypto")))
	assert.False(t, ValidMethod(Method("")))
}
