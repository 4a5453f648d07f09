package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitpulsehq/gym-manager/internal/domain/role"
	"github.com/fitpulsehq/gym-manager/internal/dto"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/httpresp"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type MemberHandler struct {
	db *gorm.DB
}

func NewMemberHandler(db *gorm.DB) *MemberHandler {
	return &MemberHandler{db: db}
}

// ======================================================
// LIST (admin)
// ======================================================

// Classifies each member in SQL so the roster is a single query: active when
// an active subscription exists, expired when subscriptions exist but none is
// active, no_subscription otherwise. Must stay in sync with the status values
// in the subscriptions table.
const memberStatusExpr = `CASE
	WHEN EXISTS (SELECT 1 FROM subscriptions WHERE subscriptions.member_id = profiles.id AND subscriptions.status = 'active') THEN 'active'
	WHEN EXISTS (SELECT 1 FROM subscriptions WHERE subscriptions.member_id = profiles.id) THEN 'expired'
	ELSE 'no_subscription'
END`

type memberRow struct {
	ID                 uint
	FullName           string
	Email              string
	Phone              string
	JoinedDate         time.Time
	SubscriptionStatus string
}

// List returns the member roster with optional free-text search on
// name/email/phone and a subscription-status filter
// (active / expired / no_subscription).
func (h *MemberHandler) List(c *gin.Context) {
	search := c.Query("search")
	subStatus := c.Query("subscription_status")

	q := h.db.
		Table("profiles").
		Select("profiles.id, users.full_name, users.email, users.phone, profiles.joined_date, "+memberStatusExpr+" AS subscription_status").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("profiles.role = ?", string(role.Member))

	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where(
			"users.full_name ILIKE ? OR users.email ILIKE ? OR users.phone ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if subStatus != "" {
		q = q.Where(memberStatusExpr+" = ?", subStatus)
	}

	var rows []memberRow
	if err := q.Order("profiles.created_at DESC").Scan(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_members", "Could not list members.")
		return
	}

	out := make([]dto.MemberListDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MemberListDTO{
			ID:                 r.ID,
			FullName:           r.FullName,
			Email:              r.Email,
			Phone:              r.Phone,
			JoinedDate:         r.JoinedDate.Format("2006-01-02"),
			SubscriptionStatus: r.SubscriptionStatus,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// DETAIL (admin)
// ======================================================

func (h *MemberHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var member models.Profile
	if err := h.db.
		Preload("User").
		Where("role = ?", string(role.Member)).
		First(&member, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "member_not_found", "Member not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_member", "Could not load the member.")
		return
	}

	var subs []models.Subscription
	if err := h.db.Preload("Plan").
		Where("member_id = ?", member.ID).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		httperr.Internal(c, "failed_to_get_member", "Could not load the member's subscriptions.")
		return
	}

	var payments []models.Payment
	if err := h.db.Joins("JOIN subscriptions ON subscriptions.id = payments.subscription_id").
		Where("subscriptions.member_id = ?", member.ID).
		Order("payments.initiated_at DESC").
		Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_get_member", "Could not load the member's payments.")
		return
	}

	var attendance []models.Attendance
	if err := h.db.Where("member_id = ?", member.ID).
		Order("check_in DESC").
		Limit(30).
		Find(&attendance).Error; err != nil {
		httperr.Internal(c, "failed_to_get_member", "Could not load the member's attendance.")
		return
	}

	today := timezone.Today()

	c.JSON(http.StatusOK, gin.H{
		"member":        member,
		"age":           member.Age(today),
		"subscriptions": subs,
		"payments":      payments,
		"attendance":    attendance,
	})
}
