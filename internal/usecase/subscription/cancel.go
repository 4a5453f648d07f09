package subscription

import (
	"context"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/subscription"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

type CancelSubscription struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCancelSubscription(
	repo domain.Repository,
	audit audit.Sink,
) *CancelSubscription {
	return &CancelSubscription{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelSubscription) Execute(
	ctx context.Context,
	actorID uint,
	subscriptionID uint,
) (*models.Subscription, error) {

	sub, err := uc.repo.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, httperr.ErrBusiness("subscription_not_found")
	}

	// re-cancel is an idempotent no-op
	if domain.Status(sub.Status) == domain.StatusCancelled {
		return sub, nil
	}

	domain.Cancel(sub)

	if err := uc.repo.UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "subscription_cancelled",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	return sub, nil
}
