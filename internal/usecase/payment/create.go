package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/payment"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreatePaymentInput struct {
	SubscriptionID uint
	Amount         decimal.Decimal
	Method         string
	Notes          string
}

var minAmount = decimal.NewFromFloat(0.01)

const txnIDMaxAttempts = 3

// ======================================================
// USE CASE
// ======================================================

type CreatePayment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreatePayment(
	repo domain.Repository,
	audit audit.Sink,
) *CreatePayment {
	return &CreatePayment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePayment) Execute(
	ctx context.Context,
	actorID uint,
	in CreatePaymentInput,
) (*models.Payment, error) {

	if in.Amount.LessThan(minAmount) {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	method := domain.Method(in.Method)
	if in.Method == "" {
		method = domain.MethodCash
	}
	if !domain.ValidMethod(method) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	sub, err := uc.repo.GetSubscription(ctx, in.SubscriptionID)
	if err != nil {
		return nil, httperr.ErrBusiness("subscription_not_found")
	}

	now := timezone.Now()
	base := domain.TransactionID(now, sub.MemberID)

	p := &models.Payment{
		SubscriptionID: sub.ID,
		Amount:         in.Amount,
		PaymentMethod:  string(method),
		Status:         string(domain.InitialStatus()),
		TransactionID:  base,
		InitiatedAt:    now,
		Notes:          in.Notes,
	}

	// Two payments for the same member within one second collide on the
	// timestamp scheme; retry with a short random suffix before giving up.
	created := false
	for attempt := 0; attempt < txnIDMaxAttempts; attempt++ {
		if attempt > 0 {
			p.TransactionID = domain.Disambiguate(base, uuid.NewString()[:8])
		}

		err = uc.repo.CreatePayment(ctx, p)
		if err == nil {
			created = true
			break
		}
		if !httperr.IsUniqueViolation(err) {
			return nil, err
		}
	}
	if !created {
		return nil, httperr.ErrBusiness("duplicate_transaction_id")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "payment_created",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return p, nil
}
