package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/fitpulsehq/gym-manager/internal/domain/attendance"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

// --------- Fakes ---------

type stubAttendanceRepo struct {
	byDate   map[string][]models.Attendance
	lastDate time.Time
}

func (s *stubAttendanceRepo) GetMember(context.Context, uint) (*models.Profile, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) GetAttendance(context.Context, uint) (*models.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) FindOpenForDate(context.Context, uint, time.Time) (*models.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) CreateAttendance(context.Context, *models.Attendance) error {
	return nil
}

func (s *stubAttendanceRepo) UpdateAttendance(context.Context, *models.Attendance) error {
	return nil
}

func (s *stubAttendanceRepo) ListForDate(_ context.Context, date time.Time) ([]models.Attendance, error) {
	s.lastDate = date
	return s.byDate[date.Format("2006-01-02")], nil
}

func (s *stubAttendanceRepo) ListForMember(context.Context, uint, int) ([]models.Attendance, error) {
	return nil, nil
}

var _ domain.Repository = (*stubAttendanceRepo)(nil)

// --------- Tests ---------

func TestAttendanceHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(90 * time.Minute)

	repo := &stubAttendanceRepo{
		byDate: map[string][]models.Attendance{
			"2025-03-10": {
				{
					ID:       1,
					MemberID: 5,
					Member:   models.Profile{User: models.User{FullName: "Sita Sharma"}},
					CheckIn:  checkIn,
					CheckOut: &checkOut,
					Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				},
				{
					ID:       2,
					MemberID: 6,
					Member:   models.Profile{User: models.User{FullName: "Ram Thapa"}},
					CheckIn:  checkIn.Add(time.Hour),
					Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				},
			},
		},
	}

	h := NewAttendanceHandler(nil, repo, nil, nil)

	t.Run("serves the requested day from the repository", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/attendance?date=2025-03-10", nil)

		h.List(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2025-03-10", repo.lastDate.Format("2006-01-02"))

		var body struct {
			Date  string `json:"date"`
			Total int    `json:"total"`
			Data  []struct {
				MemberName    string   `json:"member_name"`
				DurationHours *float64 `json:"duration_hours"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		assert.Equal(t, "2025-03-10", body.Date)
		assert.Equal(t, 2, body.Total)
		require.Len(t, body.Data, 2)

		assert.Equal(t, "Sita Sharma", body.Data[0].MemberName)
		require.NotNil(t, body.Data[0].DurationHours)
		assert.Equal(t, 1.5, *body.Data[0].DurationHours)

		// still checked in: no duration yet
		assert.Nil(t, body.Data[1].DurationHours)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/attendance?date=10-03-2025", nil)

		h.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
