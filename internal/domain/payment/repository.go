package payment

import (
	"context"

	"github.com/fitpulsehq/gym-manager/internal/models"
)

type Repository interface {
	GetSubscription(
		ctx context.Context,
		id uint,
	) (*models.Subscription, error)

	GetPayment(
		ctx context.Context,
		id uint,
	) (*models.Payment, error)

	// CreatePayment inserts the payment as-is. A transaction-id collision
	// surfaces as a unique violation for the caller to retry.
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	// CompletePayment saves the payment together with its subscription in a
	// single transaction so the completion side effect is atomic.
	CompletePayment(
		ctx context.Context,
		p *models.Payment,
		s *models.Subscription,
	) error
}
