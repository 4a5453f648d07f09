package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fitpulsehq/gym-manager/internal/cache"
	paydomain "github.com/fitpulsehq/gym-manager/internal/domain/payment"
	"github.com/fitpulsehq/gym-manager/internal/domain/role"
	subdomain "github.com/fitpulsehq/gym-manager/internal/domain/subscription"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/middleware"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

const adminDashboardTTL = 60 * time.Second

type DashboardHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDashboardHandler(db *gorm.DB, cache *cache.Cache) *DashboardHandler {
	return &DashboardHandler{db: db, cache: cache}
}

// ======================================================
// ADMIN
// ======================================================

type AdminDashboard struct {
	ActiveMembers       int64 `json:"active_members"`
	ActiveTrainers      int64 `json:"active_trainers"`
	ActiveStaff         int64 `json:"active_staff"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`

	RevenueThisMonth decimal.Decimal `json:"revenue_this_month"`
	AttendanceToday  int64           `json:"attendance_today"`

	RecentSubscriptions []models.Subscription `json:"recent_subscriptions"`
	RecentPayments      []models.Payment      `json:"recent_payments"`
	RecentAttendance    []models.Attendance   `json:"recent_attendance"`
	ExpiringSoon        []models.Subscription `json:"expiring_soon"`
}

func (h *DashboardHandler) Admin(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", "Account no longer exists.")
		return
	}

	var profile models.Profile
	_ = h.db.Where("user_id = ?", userID).First(&profile).Error

	if !role.Can(&user, &profile, role.ViewReports) {
		httperr.Forbidden(c, "reports_forbidden", "You do not have permission to view reports.")
		return
	}

	ctx := c.Request.Context()

	var dash AdminDashboard
	if hit, err := h.cache.GetJSON(ctx, "dashboard:admin", &dash); err == nil && hit {
		c.JSON(http.StatusOK, dash)
		return
	}

	today := timezone.Today()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	weekAhead := today.AddDate(0, 0, 7)

	countProfiles := func(kind role.Kind) (int64, error) {
		var n int64
		err := h.db.Model(&models.Profile{}).
			Where("role = ? AND is_active = ?", string(kind), true).
			Count(&n).Error
		return n, err
	}

	var err error
	if dash.ActiveMembers, err = countProfiles(role.Member); err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}
	if dash.ActiveTrainers, err = countProfiles(role.Trainer); err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}
	if dash.ActiveStaff, err = countProfiles(role.Staff); err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	if err := h.db.Model(&models.Subscription{}).
		Where("status = ?", string(subdomain.StatusActive)).
		Count(&dash.ActiveSubscriptions).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	// Revenue stays in decimal end to end; the Scan target implements
	// sql.Scanner so the SUM never passes through a float.
	row := h.db.Model(&models.Payment{}).
		Where("status = ? AND completed_at >= ?", string(paydomain.StatusCompleted), monthStart).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&dash.RevenueThisMonth); err != nil {
		dash.RevenueThisMonth = decimal.Zero
	}

	if err := h.db.Model(&models.Attendance{}).
		Where("date = ?", today).
		Count(&dash.AttendanceToday).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	if err := h.db.Preload("Member.User").Preload("Plan").
		Order("created_at DESC").Limit(5).
		Find(&dash.RecentSubscriptions).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	if err := h.db.Preload("Subscription.Member.User").
		Order("initiated_at DESC").Limit(5).
		Find(&dash.RecentPayments).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	if err := h.db.Preload("Member.User").
		Order("check_in DESC").Limit(5).
		Find(&dash.RecentAttendance).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	if err := h.db.Preload("Member.User").Preload("Plan").
		Where("status = ? AND end_date BETWEEN ? AND ?", string(subdomain.StatusActive), today, weekAhead).
		Order("end_date ASC").
		Find(&dash.ExpiringSoon).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	_ = h.cache.SetJSON(ctx, "dashboard:admin", dash, adminDashboardTTL)

	c.JSON(http.StatusOK, dash)
}

// ======================================================
// MEMBER
// ======================================================

func (h *DashboardHandler) Member(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var member models.Profile
	if err := h.db.Preload("User").Where("user_id = ?", userID).First(&member).Error; err != nil {
		httperr.NotFound(c, "member_not_found", "No member profile for this account.")
		return
	}

	var current *models.Subscription
	var sub models.Subscription
	err := h.db.Preload("Plan").
		Where("member_id = ? AND status = ?", member.ID, string(subdomain.StatusActive)).
		First(&sub).Error
	switch {
	case err == nil:
		current = &sub
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no active subscription is a normal state
	default:
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	var daysRemaining *int
	if current != nil {
		d := subdomain.DaysRemaining(current, timezone.Today())
		daysRemaining = &d
	}

	var recent []models.Attendance
	if err := h.db.Where("member_id = ?", member.ID).
		Order("check_in DESC").Limit(10).
		Find(&recent).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	var lastCheckIn *time.Time
	if len(recent) > 0 {
		lastCheckIn = &recent[0].CheckIn
	}

	today := timezone.Today()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	weekAgo := today.AddDate(0, 0, -7)

	var monthCount, weekCount int64
	if err := h.db.Model(&models.Attendance{}).
		Where("member_id = ? AND date >= ?", member.ID, monthStart).
		Count(&monthCount).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}
	if err := h.db.Model(&models.Attendance{}).
		Where("member_id = ? AND date >= ?", member.ID, weekAgo).
		Count(&weekCount).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_subscription":  current,
		"days_remaining":        daysRemaining,
		"recent_attendance":     recent,
		"attendance_this_month": monthCount,
		"attendance_this_week":  weekCount,
		"last_check_in":         lastCheckIn,
	})
}

// ======================================================
// TRAINER
// ======================================================

func (h *DashboardHandler) Trainer(c *gin.Context) {
	today := timezone.Today()

	var activeMembers int64
	if err := h.db.Model(&models.Profile{}).
		Where("role = ? AND is_active = ?", string(role.Member), true).
		Count(&activeMembers).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	var attendanceToday int64
	if err := h.db.Model(&models.Attendance{}).
		Where("date = ?", today).
		Count(&attendanceToday).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	var recent []models.Attendance
	if err := h.db.Preload("Member.User").
		Order("check_in DESC").Limit(10).
		Find(&recent).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"active_members":    activeMembers,
		"attendance_today":  attendanceToday,
		"recent_attendance": recent,
	})
}

// ======================================================
// STAFF
// ======================================================

func (h *DashboardHandler) Staff(c *gin.Context) {
	today := timezone.Today()

	var todays []models.Attendance
	if err := h.db.Preload("Member.User").
		Where("date = ?", today).
		Order("check_in DESC").
		Find(&todays).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	// Checked in today with no check-out yet.
	var present []models.Attendance
	if err := h.db.Preload("Member.User").
		Where("date = ? AND check_out IS NULL", today).
		Order("check_in ASC").
		Find(&present).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	var roster []models.Profile
	if err := h.db.Preload("User").
		Where("role = ? AND is_active = ?", string(role.Member), true).
		Order("created_at DESC").
		Find(&roster).Error; err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attendance_today": todays,
		"present_members":  present,
		"active_members":   roster,
	})
}
