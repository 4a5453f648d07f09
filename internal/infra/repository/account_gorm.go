package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fitpulsehq/gym-manager/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) HasProfile(
	ctx context.Context,
	userID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) CreateProfile(
	ctx context.Context,
	p *models.Profile,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}
