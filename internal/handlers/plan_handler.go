package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

type PlanHandler struct {
	db *gorm.DB
}

func NewPlanHandler(db *gorm.DB) *PlanHandler {
	return &PlanHandler{db: db}
}

// --------- Requests ---------

type CreatePlanRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Price        string `json:"price" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required,min=1"`
	Features     string `json:"features"`
}

type UpdatePlanRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Price        *string `json:"price,omitempty"`
	DurationDays *int    `json:"duration_days,omitempty"`
	Features     *string `json:"features,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

var minPlanPrice = decimal.NewFromFloat(0.01)

// Prices travel as strings so no float ever touches the amount.
func parsePrice(raw string) (decimal.Decimal, bool) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.LessThan(minPlanPrice) {
		return decimal.Zero, false
	}
	return price, true
}

// --------- Handlers ---------

func (h *PlanHandler) List(c *gin.Context) {
	var plans []models.MembershipPlan
	if err := h.db.Order("price ASC").Find(&plans).Error; err != nil {
		httperr.Internal(c, "failed_to_list_plans", "Could not list membership plans.")
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	price, ok := parsePrice(req.Price)
	if !ok {
		httperr.BadRequest(c, "invalid_price", "Price must be a decimal of at least 0.01.")
		return
	}

	plan := models.MembershipPlan{
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		DurationDays: req.DurationDays,
		Features:     req.Features,
		IsActive:     true,
	}

	if err := h.db.Create(&plan).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "duplicate_plan_name", "A plan with this name already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_plan", "Could not create the plan.")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var plan models.MembershipPlan
	if err := h.db.First(&plan, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "plan_not_found", "Membership plan not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_plan", "Could not load the plan.")
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Price != nil {
		price, ok := parsePrice(*req.Price)
		if !ok {
			httperr.BadRequest(c, "invalid_price", "Price must be a decimal of at least 0.01.")
			return
		}
		plan.Price = price
	}
	if req.DurationDays != nil {
		if *req.DurationDays < 1 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be at least one day.")
			return
		}
		plan.DurationDays = *req.DurationDays
	}
	if req.Features != nil {
		plan.Features = *req.Features
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := h.db.Save(&plan).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "duplicate_plan_name", "A plan with this name already exists.")
			return
		}
		httperr.Internal(c, "failed_to_update_plan", "Could not save the plan.")
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var plan models.MembershipPlan
	if err := h.db.First(&plan, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "plan_not_found", "Membership plan not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_plan", "Could not load the plan.")
		return
	}

	if err := h.db.Delete(&plan).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "plan_in_use", "The plan is referenced by subscriptions and cannot be deleted.")
			return
		}
		httperr.Internal(c, "failed_to_delete_plan", "Could not delete the plan.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": plan.ID})
}
