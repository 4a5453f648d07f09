package payment

import (
	"context"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/payment"
	domsub "github.com/fitpulsehq/gym-manager/internal/domain/subscription"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
)

type CompletePayment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCompletePayment(
	repo domain.Repository,
	audit audit.Sink,
) *CompletePayment {
	return &CompletePayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompletePayment) Execute(
	ctx context.Context,
	actorID uint,
	paymentID uint,
) (*models.Payment, error) {

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_not_found")
	}

	sub, err := uc.repo.GetSubscription(ctx, p.SubscriptionID)
	if err != nil {
		return nil, httperr.ErrBusiness("subscription_not_found")
	}

	now := timezone.Now()
	if err := domain.Complete(p, now); err != nil {
		return nil, err
	}

	// The completion side effect only promotes a pending subscription.
	// Expired, cancelled and already-active subscriptions stay untouched.
	activated := false
	if domsub.Status(sub.Status) == domsub.StatusPending {
		domsub.Activate(sub)
		activated = true
	}

	if err := uc.repo.CompletePayment(ctx, p, sub); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "payment_completed",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	if activated {
		uc.audit.Dispatch(audit.Event{
			UserID:   &actorID,
			Action:   "subscription_activated",
			Entity:   "subscription",
			EntityID: &sub.ID,
		})
	}

	return p, nil
}
