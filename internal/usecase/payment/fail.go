package payment

import (
	"context"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/payment"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

type FailPayment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewFailPayment(
	repo domain.Repository,
	audit audit.Sink,
) *FailPayment {
	return &FailPayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *FailPayment) Execute(
	ctx context.Context,
	actorID uint,
	paymentID uint,
	reason string,
) (*models.Payment, error) {

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_not_found")
	}

	if err := domain.Fail(p, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "payment_failed",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return p, nil
}
