package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/fitpulsehq/gym-manager/internal/domain/subscription"
	"github.com/fitpulsehq/gym-manager/internal/dto"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/httpresp"
	"github.com/fitpulsehq/gym-manager/internal/middleware"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
	ucSubscription "github.com/fitpulsehq/gym-manager/internal/usecase/subscription"
)

// ======================================================
// HANDLER
// ======================================================

type SubscriptionHandler struct {
	db         *gorm.DB
	repo       domain.Repository
	createUC   *ucSubscription.CreateSubscription
	activateUC *ucSubscription.ActivateSubscription
	cancelUC   *ucSubscription.CancelSubscription
	expiryUC   *ucSubscription.CheckExpiry
}

func NewSubscriptionHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucSubscription.CreateSubscription,
	activateUC *ucSubscription.ActivateSubscription,
	cancelUC *ucSubscription.CancelSubscription,
	expiryUC *ucSubscription.CheckExpiry,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		db:         db,
		repo:       repo,
		createUC:   createUC,
		activateUC: activateUC,
		cancelUC:   cancelUC,
		expiryUC:   expiryUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSubscriptionRequest struct {
	MemberID  uint   `json:"member_id" binding:"required"`
	PlanID    uint   `json:"plan_id" binding:"required"`
	StartDate string `json:"start_date"` // YYYY-MM-DD, defaults to today
}

// ======================================================
// LIST (admin)
// ======================================================

func (h *SubscriptionHandler) List(c *gin.Context) {
	status := c.Query("status")

	q := h.db.Preload("Member.User").Preload("Plan")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var subs []models.Subscription
	if err := q.Order("created_at DESC").Find(&subs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_subscriptions", "Could not list subscriptions.")
		return
	}

	// Expiry runs opportunistically on reads; a failed write here only
	// delays the transition until the next read.
	for i := range subs {
		_ = h.expiryUC.Execute(c.Request.Context(), &subs[i])
	}

	today := timezone.Today()
	out := make([]dto.SubscriptionListDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, dto.SubscriptionListDTO{
			ID:            s.ID,
			MemberName:    s.Member.User.FullName,
			PlanName:      s.Plan.Name,
			PlanPrice:     s.Plan.Price,
			StartDate:     s.StartDate.Format("2006-01-02"),
			EndDate:       s.EndDate.Format("2006-01-02"),
			Status:        s.Status,
			DaysRemaining: domain.DaysRemaining(&s, today),
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// CREATE (staff/admin)
// ======================================================

func (h *SubscriptionHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	sub, err := h.createUC.Execute(c.Request.Context(), actorID, ucSubscription.CreateSubscriptionInput{
		MemberID:  req.MemberID,
		PlanID:    req.PlanID,
		StartDate: req.StartDate,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "member_not_found"):
			httperr.NotFound(c, "member_not_found", "Member not found.")
		case httperr.IsBusiness(err, "plan_not_found"):
			httperr.NotFound(c, "plan_not_found", "Membership plan not found.")
		case httperr.IsBusiness(err, "member_inactive"):
			httperr.BadRequest(c, "member_inactive", "The member profile is inactive.")
		case httperr.IsBusiness(err, "plan_inactive"):
			httperr.BadRequest(c, "plan_inactive", "The membership plan is inactive.")
		case httperr.IsBusiness(err, "invalid_start_date"):
			httperr.BadRequest(c, "invalid_start_date", "Start date must be YYYY-MM-DD.")
		default:
			httperr.Internal(c, "failed_to_create_subscription", "Could not create the subscription.")
		}
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// ======================================================
// ACTIVATE / CANCEL
// ======================================================

func (h *SubscriptionHandler) Activate(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Subscription id must be numeric.")
		return
	}

	sub, err := h.activateUC.Execute(c.Request.Context(), actorID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "subscription_not_found"):
			httperr.NotFound(c, "subscription_not_found", "Subscription not found.")
		case httperr.IsBusiness(err, "duplicate_active_subscription"):
			httperr.Conflict(c, "duplicate_active_subscription", "The member already has an active subscription.")
		default:
			httperr.Internal(c, "failed_to_activate_subscription", "Could not activate the subscription.")
		}
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Subscription id must be numeric.")
		return
	}

	sub, err := h.cancelUC.Execute(c.Request.Context(), actorID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "subscription_not_found") {
			httperr.NotFound(c, "subscription_not_found", "Subscription not found.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_subscription", "Could not cancel the subscription.")
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ======================================================
// MY SUBSCRIPTION (member)
// ======================================================

func (h *SubscriptionHandler) MySubscription(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var member models.Profile
	if err := h.db.Where("user_id = ?", userID).First(&member).Error; err != nil {
		httperr.NotFound(c, "member_not_found", "No member profile for this account.")
		return
	}

	subs, err := h.repo.ListByMember(c.Request.Context(), member.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_subscriptions", "Could not load subscriptions.")
		return
	}

	today := timezone.Today()

	var current *models.Subscription
	for i := range subs {
		_ = h.expiryUC.Execute(c.Request.Context(), &subs[i])
		if current == nil && domain.Status(subs[i].Status) == domain.StatusActive {
			current = &subs[i]
		}
	}

	var daysRemaining *int
	if current != nil {
		d := domain.DaysRemaining(current, today)
		daysRemaining = &d
	}

	var plans []models.MembershipPlan
	if err := h.db.Where("is_active = ?", true).Order("price ASC").Find(&plans).Error; err != nil {
		httperr.Internal(c, "failed_to_list_plans", "Could not load the plan catalog.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_subscription": current,
		"days_remaining":       daysRemaining,
		"history":              subs,
		"available_plans":      plans,
	})
}
