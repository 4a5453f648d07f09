package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/httpresp"
	"github.com/fitpulsehq/gym-manager/internal/middleware"
	"github.com/fitpulsehq/gym-manager/internal/models"
	ucPayment "github.com/fitpulsehq/gym-manager/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	db         *gorm.DB
	createUC   *ucPayment.CreatePayment
	completeUC *ucPayment.CompletePayment
	failUC     *ucPayment.FailPayment
}

func NewPaymentHandler(
	db *gorm.DB,
	createUC *ucPayment.CreatePayment,
	completeUC *ucPayment.CompletePayment,
	failUC *ucPayment.FailPayment,
) *PaymentHandler {
	return &PaymentHandler{
		db:         db,
		createUC:   createUC,
		completeUC: completeUC,
		failUC:     failUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePaymentRequest struct {
	SubscriptionID uint   `json:"subscription_id" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
	Method         string `json:"method"`
	Notes          string `json:"notes"`
}

type FailPaymentRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// LIST (admin)
// ======================================================

func (h *PaymentHandler) List(c *gin.Context) {
	status := c.Query("status")
	method := c.Query("method")

	q := h.db.Preload("Subscription.Member.User").Preload("Subscription.Plan")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if method != "" {
		q = q.Where("payment_method = ?", method)
	}

	var payments []models.Payment
	if err := q.Order("initiated_at DESC").Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Could not list payments.")
		return
	}

	httpresp.List(c, payments)
}

// ======================================================
// CREATE
// ======================================================

func (h *PaymentHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		httperr.BadRequest(c, "invalid_amount", "Amount must be a decimal number.")
		return
	}

	p, err := h.createUC.Execute(c.Request.Context(), actorID, ucPayment.CreatePaymentInput{
		SubscriptionID: req.SubscriptionID,
		Amount:         amount,
		Method:         req.Method,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_amount"):
			httperr.BadRequest(c, "invalid_amount", "Amount must be at least 0.01.")
		case httperr.IsBusiness(err, "invalid_payment_method"):
			httperr.BadRequest(c, "invalid_payment_method", "Method must be cash, card, online or esewa.")
		case httperr.IsBusiness(err, "subscription_not_found"):
			httperr.NotFound(c, "subscription_not_found", "Subscription not found.")
		case httperr.IsBusiness(err, "duplicate_transaction_id"):
			httperr.Conflict(c, "duplicate_transaction_id", "Could not allocate a unique transaction id.")
		default:
			httperr.Internal(c, "failed_to_create_payment", "Could not create the payment.")
		}
		return
	}

	c.JSON(http.StatusCreated, p)
}

// ======================================================
// COMPLETE / FAIL
// ======================================================

func (h *PaymentHandler) Complete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Payment id must be numeric.")
		return
	}

	p, err := h.completeUC.Execute(c.Request.Context(), actorID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "payment_not_found"):
			httperr.NotFound(c, "payment_not_found", "Payment not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Only pending payments can be completed.")
		case httperr.IsBusiness(err, "duplicate_active_subscription"):
			httperr.Conflict(c, "duplicate_active_subscription", "The member already has an active subscription.")
		default:
			httperr.Internal(c, "failed_to_complete_payment", "Could not complete the payment.")
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) Fail(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Payment id must be numeric.")
		return
	}

	var req FailPaymentRequest
	_ = c.ShouldBindJSON(&req)

	p, err := h.failUC.Execute(c.Request.Context(), actorID, uint(id), req.Reason)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "payment_not_found"):
			httperr.NotFound(c, "payment_not_found", "Payment not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Only pending payments can be failed.")
		default:
			httperr.Internal(c, "failed_to_fail_payment", "Could not mark the payment failed.")
		}
		return
	}

	c.JSON(http.StatusOK, p)
}
