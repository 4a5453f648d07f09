package attendance

import (
	"context"
	"time"

	"github.com/fitpulsehq/gym-manager/internal/models"
)

type Repository interface {
	GetMember(
		ctx context.Context,
		memberID uint,
	) (*models.Profile, error)

	GetAttendance(
		ctx context.Context,
		id uint,
	) (*models.Attendance, error)

	// FindOpenForDate returns the member's not-yet-checked-out record for the
	// given calendar date, or nil when there is none.
	FindOpenForDate(
		ctx context.Context,
		memberID uint,
		date time.Time,
	) (*models.Attendance, error)

	CreateAttendance(
		ctx context.Context,
		a *models.Attendance,
	) error

	UpdateAttendance(
		ctx context.Context,
		a *models.Attendance,
	) error

	ListForDate(
		ctx context.Context,
		date time.Time,
	) ([]models.Attendance, error)

	ListForMember(
		ctx context.Context,
		memberID uint,
		limit int,
	) ([]models.Attendance, error)
}
