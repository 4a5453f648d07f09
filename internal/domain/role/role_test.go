package role

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fitpulsehq/gym-manager/internal/models"
)

func TestCan(t *testing.T) {
	t.Run("superuser bypasses everything", func(t *testing.T) {
		user := &models.User{IsSuperuser: true}

		assert.True(t, Can(user, nil, ManageUsers))
		assert.True(t, Can(user, &models.Profile{Role: string(Member)}, ViewReports))
	})

	t.Run("full access admin holds every permission", func(t *testing.T) {
		user := &models.User{}
		profile := &models.Profile{
			Role:        string(Admin),
			AccessLevel: AccessFull,
		}

		assert.True(t, Can(user, profile, ManageUsers))
		assert.True(t, Can(user, profile, ManagePayments))
		assert.True(t, Can(user, profile, ViewReports))
	})

	t.Run("limited admin holds only flagged permissions", func(t *testing.T) {
		user := &models.User{}
		profile := &models.Profile{
			Role:           string(Admin),
			AccessLevel:    AccessLimited,
			CanViewReports: true,
		}

		assert.True(t, Can(user, profile, ViewReports))
		assert.False(t, Can(user, profile, ManageUsers))
		assert.False(t, Can(user, profile, ManagePayments))
	})

	t.Run("non-admin roles hold nothing", func(t *testing.T) {
		user := &models.User{}
		for _, kind := range []Kind{Member, Trainer, Staff} {
			profile := &models.Profile{Role: string(kind), CanViewReports: true}

			assert.False(t, Can(user, profile, ViewReports))
		}
	})

	t.Run("nil profile holds nothing", func(t *testing.T) {
		assert.False(t, Can(&models.User{}, nil, ViewReports))
	})
}

func TestValid(t *testing.T) {
	for _, kind := range []Kind{Member, Trainer, Staff, Admin} {
		assert.True(t, Valid(kind))
	}
	assert.False(t, Valid(Kind("owner")))
	assert.False(t, Valid(Kind("")))
}
