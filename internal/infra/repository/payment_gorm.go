package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) GetSubscription(
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

func (r *PaymentGormRepository) GetPayment(
	ctx context.Context,
	id uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Subscription").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *PaymentGormRepository) CompletePayment(
	ctx context.Context,
	p *models.Payment,
	s *models.Subscription,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(s).Error; err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("duplicate_active_subscription")
		}
		return err
	}
	return nil
}
