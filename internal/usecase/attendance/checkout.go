package attendance

import (
	"context"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/attendance"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
)

type CheckOut struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCheckOut(
	repo domain.Repository,
	audit audit.Sink,
) *CheckOut {
	return &CheckOut{
		repo:  repo,
		audit: audit,
	}
}

// Execute checks the record out. Re-checkout leaves the original timestamp
// in place; changed reports whether anything was written.
func (uc *CheckOut) Execute(
	ctx context.Context,
	actorID uint,
	attendanceID uint,
) (record *models.Attendance, changed bool, err error) {

	a, err := uc.repo.GetAttendance(ctx, attendanceID)
	if err != nil {
		return nil, false, httperr.ErrBusiness("attendance_not_found")
	}

	if !domain.Checkout(a, timezone.Now()) {
		return a, false, nil
	}

	if err := uc.repo.UpdateAttendance(ctx, a); err != nil {
		return nil, false, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "member_checked_out",
		Entity:   "attendance",
		EntityID: &a.ID,
	})

	return a, true, nil
}
