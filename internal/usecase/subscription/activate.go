package subscription

import (
	"context"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/subscription"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

type ActivateSubscription struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewActivateSubscription(
	repo domain.Repository,
	audit audit.Sink,
) *ActivateSubscription {
	return &ActivateSubscription{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ActivateSubscription) Execute(
	ctx context.Context,
	actorID uint,
	subscriptionID uint,
) (*models.Subscription, error) {

	sub, err := uc.repo.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, httperr.ErrBusiness("subscription_not_found")
	}

	domain.Activate(sub)

	// A second active subscription for the member trips the partial unique
	// index and comes back as duplicate_active_subscription.
	if err := uc.repo.UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "subscription_activated",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	return sub, nil
}
