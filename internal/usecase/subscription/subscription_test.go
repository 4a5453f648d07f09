package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/subscription"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

// --------- Fakes ---------

type fakeSubscriptionRepo struct {
	members       map[uint]*models.Profile
	plans         map[uint]*models.MembershipPlan
	subscriptions map[uint]*models.Subscription
	nextID        uint

	updateErr error
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		members:       map[uint]*models.Profile{},
		plans:         map[uint]*models.MembershipPlan{},
		subscriptions: map[uint]*models.Subscription{},
		nextID:        1,
	}
}

func (f *fakeSubscriptionRepo) GetMember(_ context.Context, memberID uint) (*models.Profile, error) {
	m, ok := f.members[memberID]
	if !ok {
		return nil, httperr.ErrBusiness("member_not_found")
	}
	return m, nil
}

func (f *fakeSubscriptionRepo) GetPlan(_ context.Context, planID uint) (*models.MembershipPlan, error) {
	p, ok := f.plans[planID]
	if !ok {
		return nil, httperr.ErrBusiness("plan_not_found")
	}
	return p, nil
}

func (f *fakeSubscriptionRepo) GetSubscription(_ context.Context, id uint) (*models.Subscription, error) {
	s, ok := f.subscriptions[id]
	if !ok {
		return nil, httperr.ErrBusiness("subscription_not_found")
	}
	return s, nil
}

func (f *fakeSubscriptionRepo) CreateSubscription(_ context.Context, s *models.Subscription) error {
	s.ID = f.nextID
	f.nextID++
	f.subscriptions[s.ID] = s
	return nil
}

func (f *fakeSubscriptionRepo) UpdateSubscription(_ context.Context, s *models.Subscription) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.subscriptions[s.ID] = s
	return nil
}

func (f *fakeSubscriptionRepo) ListByMember(_ context.Context, memberID uint) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range f.subscriptions {
		if s.MemberID == memberID {
			out = append(out, *s)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeSubscriptionRepo)(nil)

type fakeSink struct {
	events []audit.Event
}

func (f *fakeSink) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

// --------- Tests ---------

func TestCreateSubscription(t *testing.T) {
	base := func() *fakeSubscriptionRepo {
		repo := newFakeSubscriptionRepo()
		repo.members[5] = &models.Profile{ID: 5, IsActive: true}
		repo.plans[2] = &models.MembershipPlan{ID: 2, DurationDays: 30, IsActive: true}
		return repo
	}

	t.Run("pending subscription with plan duration window", func(t *testing.T) {
		repo := base()
		sink := &fakeSink{}
		uc := NewCreateSubscription(repo, sink)

		sub, err := uc.Execute(context.Background(), 99, CreateSubscriptionInput{
			MemberID:  5,
			PlanID:    2,
			StartDate: "2025-03-10",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), sub.Status)
		assert.Equal(t, "2025-03-10", sub.StartDate.Format("2006-01-02"))
		assert.Equal(t, "2025-04-09", sub.EndDate.Format("2006-01-02"))
		require.Len(t, sink.events, 1)
		assert.Equal(t, "subscription_created", sink.events[0].Action)
	})

	t.Run("start date defaults to today", func(t *testing.T) {
		uc := NewCreateSubscription(base(), &fakeSink{})

		sub, err := uc.Execute(context.Background(), 99, CreateSubscriptionInput{
			MemberID: 5,
			PlanID:   2,
		})

		require.NoError(t, err)
		assert.Equal(t, 30*24*time.Hour, sub.EndDate.Sub(sub.StartDate))
	})

	t.Run("inactive member", func(t *testing.T) {
		repo := base()
		repo.members[5].IsActive = false
		uc := NewCreateSubscription(repo, &fakeSink{})

		_, err := uc.Execute(context.Background(), 99, CreateSubscriptionInput{MemberID: 5, PlanID: 2})

		assert.True(t, httperr.IsBusiness(err, "member_inactive"))
	})

	t.Run("inactive plan", func(t *testing.T) {
		repo := base()
		repo.plans[2].IsActive = false
		uc := NewCreateSubscription(repo, &fakeSink{})

		_, err := uc.Execute(context.Background(), 99, CreateSubscriptionInput{MemberID: 5, PlanID: 2})

		assert.True(t, httperr.IsBusiness(err, "plan_inactive"))
	})

	t.Run("malformed start date", func(t *testing.T) {
		uc := NewCreateSubscription(base(), &fakeSink{})

		_, err := uc.Execute(context.Background(), 99, CreateSubscriptionInput{
			MemberID:  5,
			PlanID:    2,
			StartDate: "10/03/2025",
		})

		assert.True(t, httperr.IsBusiness(err, "invalid_start_date"))
	})
}

func TestActivateSubscription(t *testing.T) {
	t.Run("activates and audits", func(t *testing.T) {
		repo := newFakeSubscriptionRepo()
		repo.subscriptions[1] = &models.Subscription{ID: 1, MemberID: 5, Status: string(domain.StatusPending)}
		sink := &fakeSink{}
		uc := NewActivateSubscription(repo, sink)

		sub, err := uc.Execute(context.Background(), 99, 1)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusActive), sub.Status)
		require.Len(t, sink.events, 1)
		assert.Equal(t, "subscription_activated", sink.events[0].Action)
	})

	t.Run("conflict from the storage layer surfaces", func(t *testing.T) {
		repo := newFakeSubscriptionRepo()
		repo.subscriptions[1] = &models.Subscription{ID: 1, MemberID: 5, Status: string(domain.StatusPending)}
		repo.updateErr = httperr.ErrBusiness("duplicate_active_subscription")
		sink := &fakeSink{}
		uc := NewActivateSubscription(repo, sink)

		_, err := uc.Execute(context.Background(), 99, 1)

		assert.True(t, httperr.IsBusiness(err, "duplicate_active_subscription"))
		assert.Empty(t, sink.events)
	})
}

func TestCancelSubscription(t *testing.T) {
	t.Run("cancels from pending", func(t *testing.T) {
		repo := newFakeSubscriptionRepo()
		repo.subscriptions[1] = &models.Subscription{ID: 1, Status: string(domain.StatusPending)}
		sink := &fakeSink{}
		uc := NewCancelSubscription(repo, sink)

		sub, err := uc.Execute(context.Background(), 99, 1)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), sub.Status)
		assert.Len(t, sink.events, 1)
	})

	t.Run("re-cancel is a silent no-op", func(t *testing.T) {
		repo := newFakeSubscriptionRepo()
		repo.subscriptions[1] = &models.Subscription{ID: 1, Status: string(domain.StatusCancelled)}
		sink := &fakeSink{}
		uc := NewCancelSubscription(repo, sink)

		sub, err := uc.Execute(context.Background(), 99, 1)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), sub.Status)
		// no second audit event for an idempotent call
		assert.Empty(t, sink.events)
	})
}

func TestCheckExpiryUsecase(t *testing.T) {
	t.Run("persists the transition once", func(t *testing.T) {
		repo := newFakeSubscriptionRepo()
		sub := &models.Subscription{
			ID:      1,
			Status:  string(domain.StatusActive),
			EndDate: time.Now().AddDate(0, 0, -2),
		}
		repo.subscriptions[1] = sub
		sink := &fakeSink{}
		uc := NewCheckExpiry(repo, sink)

		require.NoError(t, uc.Execute(context.Background(), sub))
		assert.Equal(t, string(domain.StatusExpired), sub.Status)
		require.Len(t, sink.events, 1)
		assert.Equal(t, "subscription_expired", sink.events[0].Action)

		// second run does not write or audit again
		require.NoError(t, uc.Execute(context.Background(), sub))
		assert.Len(t, sink.events, 1)
	})

	t.Run("future end date is untouched", func(t *testing.T) {
		repo := newFakeSubscriptionRepo()
		sub := &models.Subscription{
			ID:      1,
			Status:  string(domain.StatusActive),
			EndDate: time.Now().AddDate(0, 0, 10),
		}
		repo.subscriptions[1] = sub
		sink := &fakeSink{}
		uc := NewCheckExpiry(repo, sink)

		require.NoError(t, uc.Execute(context.Background(), sub))
		assert.Equal(t, string(domain.StatusActive), sub.Status)
		assert.Empty(t, sink.events)
	})
}
