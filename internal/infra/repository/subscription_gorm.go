package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitpulsehq/gym-manager/internal/domain/role"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

type SubscriptionGormRepository struct {
	db *gorm.DB
}

func NewSubscriptionGormRepository(db *gorm.DB) *SubscriptionGormRepository {
	return &SubscriptionGormRepository{db: db}
}

// --------------------------------------------------
// Member / Plan
// --------------------------------------------------

func (r *SubscriptionGormRepository) GetMember(
	ctx context.Context,
	memberID uint,
) (*models.Profile, error) {

	var member models.Profile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND role = ?", memberID, string(role.Member)).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *SubscriptionGormRepository) GetPlan(
	ctx context.Context,
	planID uint,
) (*models.MembershipPlan, error) {

	var plan models.MembershipPlan
	if err := r.db.WithContext(ctx).First(&plan, planID).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// --------------------------------------------------
// Subscription
// --------------------------------------------------

func (r *SubscriptionGormRepository) GetSubscription(
	ctx context.Context,
	id uint,
) (*models.Subscription, error) {

	var sub models.Subscription
	if err := r.db.WithContext(ctx).
		Preload("Member.User").
		Preload("Plan").
		First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionGormRepository) CreateSubscription(
	ctx context.Context,
	s *models.Subscription,
) error {

	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("duplicate_active_subscription")
		}
		return err
	}
	return nil
}

func (r *SubscriptionGormRepository) UpdateSubscription(
	ctx context.Context,
	s *models.Subscription,
) error {

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("duplicate_active_subscription")
		}
		return err
	}
	return nil
}

func (r *SubscriptionGormRepository) ListByMember(
	ctx context.Context,
	memberID uint,
) ([]models.Subscription, error) {

	var subs []models.Subscription
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
