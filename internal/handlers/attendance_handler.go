package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/fitpulsehq/gym-manager/internal/domain/attendance"
	"github.com/fitpulsehq/gym-manager/internal/dto"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/middleware"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
	ucAttendance "github.com/fitpulsehq/gym-manager/internal/usecase/attendance"
)

// ======================================================
// HANDLER
// ======================================================

type AttendanceHandler struct {
	db         *gorm.DB
	repo       domain.Repository
	checkInUC  *ucAttendance.CheckIn
	checkOutUC *ucAttendance.CheckOut
}

func NewAttendanceHandler(
	db *gorm.DB,
	repo domain.Repository,
	checkInUC *ucAttendance.CheckIn,
	checkOutUC *ucAttendance.CheckOut,
) *AttendanceHandler {
	return &AttendanceHandler{
		db:         db,
		repo:       repo,
		checkInUC:  checkInUC,
		checkOutUC: checkOutUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckInRequest struct {
	MemberID uint   `json:"member_id" binding:"required"`
	Notes    string `json:"notes"`
}

// ======================================================
// LIST (staff/admin)
// ======================================================

func (h *AttendanceHandler) List(c *gin.Context) {
	date := timezone.Today()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(timezone.DefaultTimezone))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	records, err := h.repo.ListForDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_attendance", "Could not list attendance.")
		return
	}

	out := make([]dto.AttendanceListDTO, 0, len(records))
	for i := range records {
		out = append(out, toAttendanceDTO(&records[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.Format("2006-01-02"),
		"data":  out,
		"total": len(out),
	})
}

func toAttendanceDTO(a *models.Attendance) dto.AttendanceListDTO {
	var duration *float64
	if hours, ok := domain.DurationHours(a); ok {
		duration = &hours
	}

	return dto.AttendanceListDTO{
		ID:            a.ID,
		MemberName:    a.Member.User.FullName,
		CheckIn:       a.CheckIn,
		CheckOut:      a.CheckOut,
		Date:          a.Date.Format("2006-01-02"),
		DurationHours: duration,
	}
}

// ======================================================
// CHECK-IN / CHECK-OUT
// ======================================================

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	result, err := h.checkInUC.Execute(c.Request.Context(), actorID, req.MemberID, req.Notes)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "member_not_found"):
			httperr.NotFound(c, "member_not_found", "Member not found.")
		case httperr.IsBusiness(err, "member_inactive"):
			httperr.BadRequest(c, "member_inactive", "The member profile is inactive.")
		default:
			httperr.Internal(c, "failed_to_check_in", "Could not record the check-in.")
		}
		return
	}

	if result.AlreadyCheckedIn {
		c.JSON(http.StatusOK, gin.H{
			"attendance": result.Record,
			"warning":    "already_checked_in",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attendance": result.Record})
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Attendance id must be numeric.")
		return
	}

	record, changed, err := h.checkOutUC.Execute(c.Request.Context(), actorID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "attendance_not_found") {
			httperr.NotFound(c, "attendance_not_found", "Attendance record not found.")
			return
		}
		httperr.Internal(c, "failed_to_check_out", "Could not record the check-out.")
		return
	}

	resp := gin.H{"attendance": record}
	if !changed {
		resp["warning"] = "already_checked_out"
	}

	c.JSON(http.StatusOK, resp)
}

// ======================================================
// MY ATTENDANCE (member)
// ======================================================

func (h *AttendanceHandler) MyAttendance(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var member models.Profile
	if err := h.db.Where("user_id = ?", userID).First(&member).Error; err != nil {
		httperr.NotFound(c, "member_not_found", "No member profile for this account.")
		return
	}

	records, err := h.repo.ListForMember(c.Request.Context(), member.ID, 30)
	if err != nil {
		httperr.Internal(c, "failed_to_list_attendance", "Could not load attendance.")
		return
	}

	today := timezone.Today()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	weekAgo := today.AddDate(0, 0, -7)

	var monthCount, weekCount int64
	if err := h.db.Model(&models.Attendance{}).
		Where("member_id = ? AND date >= ?", member.ID, monthStart).
		Count(&monthCount).Error; err != nil {
		httperr.Internal(c, "failed_to_list_attendance", "Could not load attendance.")
		return
	}
	if err := h.db.Model(&models.Attendance{}).
		Where("member_id = ? AND date >= ?", member.ID, weekAgo).
		Count(&weekCount).Error; err != nil {
		httperr.Internal(c, "failed_to_list_attendance", "Could not load attendance.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records":               records,
		"attendance_this_month": monthCount,
		"attendance_this_week":  weekCount,
	})
}
