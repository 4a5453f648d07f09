package attendance

import (
	"context"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/attendance"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
)

// CheckInResult carries the open record plus whether the member was already
// checked in today; operators treat the duplicate case as a warning.
type CheckInResult struct {
	Record           *models.Attendance
	AlreadyCheckedIn bool
}

type CheckIn struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCheckIn(
	repo domain.Repository,
	audit audit.Sink,
) *CheckIn {
	return &CheckIn{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CheckIn) Execute(
	ctx context.Context,
	actorID uint,
	memberID uint,
	notes string,
) (*CheckInResult, error) {

	member, err := uc.repo.GetMember(ctx, memberID)
	if err != nil {
		return nil, httperr.ErrBusiness("member_not_found")
	}
	if !member.IsActive {
		return nil, httperr.ErrBusiness("member_inactive")
	}

	today := timezone.Today()

	open, err := uc.repo.FindOpenForDate(ctx, member.ID, today)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return &CheckInResult{Record: open, AlreadyCheckedIn: true}, nil
	}

	now := timezone.Now()
	record := &models.Attendance{
		MemberID: member.ID,
		CheckIn:  now,
		Date:     timezone.DateOf(now),
		Notes:    notes,
	}

	if err := uc.repo.CreateAttendance(ctx, record); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "member_checked_in",
		Entity:   "attendance",
		EntityID: &record.ID,
	})

	return &CheckInResult{Record: record}, nil
}
