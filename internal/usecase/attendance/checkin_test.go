package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	domain "github.com/fitpulsehq/gym-manager/internal/domain/attendance"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

// --------- Fakes ---------

type fakeAttendanceRepo struct {
	members map[uint]*models.Profile
	records map[uint]*models.Attendance
	nextID  uint
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		members: map[uint]*models.Profile{},
		records: map[uint]*models.Attendance{},
		nextID:  1,
	}
}

func (f *fakeAttendanceRepo) GetMember(_ context.Context, memberID uint) (*models.Profile, error) {
	m, ok := f.members[memberID]
	if !ok {
		return nil, httperr.ErrBusiness("member_not_found")
	}
	return m, nil
}

func (f *fakeAttendanceRepo) GetAttendance(_ context.Context, id uint) (*models.Attendance, error) {
	a, ok := f.records[id]
	if !ok {
		return nil, httperr.ErrBusiness("attendance_not_found")
	}
	return a, nil
}

func (f *fakeAttendanceRepo) FindOpenForDate(_ context.Context, memberID uint, date time.Time) (*models.Attendance, error) {
	for _, a := range f.records {
		if a.MemberID == memberID && a.CheckOut == nil && a.Date.Equal(date) {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) CreateAttendance(_ context.Context, a *models.Attendance) error {
	a.ID = f.nextID
	f.nextID++
	f.records[a.ID] = a
	return nil
}

func (f *fakeAttendanceRepo) UpdateAttendance(_ context.Context, a *models.Attendance) error {
	f.records[a.ID] = a
	return nil
}

func (f *fakeAttendanceRepo) ListForDate(_ context.Context, date time.Time) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, a := range f.records {
		if a.Date.Equal(date) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListForMember(_ context.Context, memberID uint, limit int) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, a := range f.records {
		if a.MemberID == memberID {
			out = append(out, *a)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeAttendanceRepo)(nil)

type fakeSink struct {
	events []audit.Event
}

func (f *fakeSink) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

// --------- Tests ---------

func TestCheckIn(t *testing.T) {
	t.Run("first check-in of the day opens a record", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		repo.members[5] = &models.Profile{ID: 5, IsActive: true}
		sink := &fakeSink{}
		uc := NewCheckIn(repo, sink)

		result, err := uc.Execute(context.Background(), 99, 5, "walk-in")

		require.NoError(t, err)
		assert.False(t, result.AlreadyCheckedIn)
		assert.Equal(t, uint(5), result.Record.MemberID)
		assert.Nil(t, result.Record.CheckOut)
		assert.Equal(t, "walk-in", result.Record.Notes)
		require.Len(t, sink.events, 1)
		assert.Equal(t, "member_checked_in", sink.events[0].Action)
	})

	t.Run("duplicate check-in returns the open record as a warning", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		repo.members[5] = &models.Profile{ID: 5, IsActive: true}
		sink := &fakeSink{}
		uc := NewCheckIn(repo, sink)

		first, err := uc.Execute(context.Background(), 99, 5, "")
		require.NoError(t, err)

		second, err := uc.Execute(context.Background(), 99, 5, "")
		require.NoError(t, err)

		assert.True(t, second.AlreadyCheckedIn)
		assert.Equal(t, first.Record.ID, second.Record.ID)
		assert.Len(t, repo.records, 1)
		// only the first check-in is audited
		assert.Len(t, sink.events, 1)
	})

	t.Run("inactive member is rejected", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		repo.members[5] = &models.Profile{ID: 5, IsActive: false}
		uc := NewCheckIn(repo, &fakeSink{})

		_, err := uc.Execute(context.Background(), 99, 5, "")

		assert.True(t, httperr.IsBusiness(err, "member_inactive"))
		assert.Empty(t, repo.records)
	})

	t.Run("unknown member", func(t *testing.T) {
		uc := NewCheckIn(newFakeAttendanceRepo(), &fakeSink{})

		_, err := uc.Execute(context.Background(), 99, 404, "")

		assert.True(t, httperr.IsBusiness(err, "member_not_found"))
	})
}

func TestCheckOut(t *testing.T) {
	t.Run("stamps check-out and reports a change", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		repo.records[1] = &models.Attendance{ID: 1, MemberID: 5, CheckIn: time.Now()}
		sink := &fakeSink{}
		uc := NewCheckOut(repo, sink)

		record, changed, err := uc.Execute(context.Background(), 99, 1)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.NotNil(t, record.CheckOut)
		require.Len(t, sink.events, 1)
		assert.Equal(t, "member_checked_out", sink.events[0].Action)
	})

	t.Run("re-checkout is a no-op", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		out := time.Now().Add(-time.Hour)
		repo.records[1] = &models.Attendance{ID: 1, MemberID: 5, CheckIn: time.Now().Add(-2 * time.Hour), CheckOut: &out}
		sink := &fakeSink{}
		uc := NewCheckOut(repo, sink)

		record, changed, err := uc.Execute(context.Background(), 99, 1)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, out, *record.CheckOut)
		assert.Empty(t, sink.events)
	})

	t.Run("unknown record", func(t *testing.T) {
		uc := NewCheckOut(newFakeAttendanceRepo(), &fakeSink{})

		_, _, err := uc.Execute(context.Background(), 99, 404)

		assert.True(t, httperr.IsBusiness(err, "attendance_not_found"))
	})
}
