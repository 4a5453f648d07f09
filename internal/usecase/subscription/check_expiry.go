package subscription

import (
	"context"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/subscription"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
)

// CheckExpiry runs the opportunistic expiry transition on read paths.
// Safe to invoke any number of times.
type CheckExpiry struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCheckExpiry(
	repo domain.Repository,
	audit audit.Sink,
) *CheckExpiry {
	return &CheckExpiry{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CheckExpiry) Execute(
	ctx context.Context,
	sub *models.Subscription,
) error {

	if !domain.CheckExpiry(sub, timezone.Today()) {
		return nil
	}

	if err := uc.repo.UpdateSubscription(ctx, sub); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "subscription_expired",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	return nil
}
