package subscription

import (
	"context"

	"github.com/fitpulsehq/gym-manager/internal/models"
)

type Repository interface {
	// -------- Member / Plan --------
	GetMember(
		ctx context.Context,
		memberID uint,
	) (*models.Profile, error)

	GetPlan(
		ctx context.Context,
		planID uint,
	) (*models.MembershipPlan, error)

	// -------- Subscription --------
	GetSubscription(
		ctx context.Context,
		id uint,
	) (*models.Subscription, error)

	CreateSubscription(
		ctx context.Context,
		s *models.Subscription,
	) error

	// UpdateSubscription persists a status change. A partial-unique-index
	// violation (second active subscription for the member) comes back as
	// the duplicate_active_subscription business error.
	UpdateSubscription(
		ctx context.Context,
		s *models.Subscription,
	) error

	ListByMember(
		ctx context.Context,
		memberID uint,
	) ([]models.Subscription, error)
}
