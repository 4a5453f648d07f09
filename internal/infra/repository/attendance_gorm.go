package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitpulsehq/gym-manager/internal/domain/role"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

type AttendanceGormRepository struct {
	db *gorm.DB
}

func NewAttendanceGormRepository(db *gorm.DB) *AttendanceGormRepository {
	return &AttendanceGormRepository{db: db}
}

func (r *AttendanceGormRepository) GetMember(
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

func (r *AttendanceGormRepository) GetAttendance(
	ctx context.Context,
	id uint,
) (*models.Attendance, error) {

	var a models.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Member.User").
		First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceGormRepository) FindOpenForDate(
	ctx context.Context,
	memberID uint,
	date time.Time,
) (*models.Attendance, error) {

	var a models.Attendance
	err := r.db.WithContext(ctx).
		Where(
			"member_id = ? AND date = ? AND check_out IS NULL",
			memberID, date,
		).
		First(&a).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceGormRepository) CreateAttendance(
	ctx context.Context,
	a *models.Attendance,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AttendanceGormRepository) UpdateAttendance(
	ctx context.Context,
	a *models.Attendance,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}

func (r *AttendanceGormRepository) ListForDate(
	ctx context.Context,
	date time.Time,
) ([]models.Attendance, error) {

	var records []models.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Member.User").
		Where("date = ?", date).
		Order("check_in DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *AttendanceGormRepository) ListForMember(
	ctx context.Context,
	memberID uint,
	limit int,
) ([]models.Attendance, error) {

	var records []models.Attendance
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("check_in DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
