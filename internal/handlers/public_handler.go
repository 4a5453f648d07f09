package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitpulsehq/gym-manager/internal/domain/role"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the unauthenticated marketing surface: the plan
// catalog, the trainer roster and the static site pages.
type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

// ======================================================
// PLANS & TRAINERS
// ======================================================

func (h *PublicHandler) Plans(c *gin.Context) {
	var plans []models.MembershipPlan
	if err := h.db.
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&plans).Error; err != nil {
		httperr.Internal(c, "failed_to_list_plans", "Could not list membership plans.")
		return
	}

	c.JSON(http.StatusOK, plans)
}

type TrainerCard struct {
	ID              uint   `json:"id"`
	FullName        string `json:"full_name"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years"`
	Bio             string `json:"bio"`
}

func (h *PublicHandler) Trainers(c *gin.Context) {
	var trainers []models.Profile
	if err := h.db.
		Preload("User").
		Where("role = ? AND is_active = ?", string(role.Trainer), true).
		Order("experience_years DESC").
		Find(&trainers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_trainers", "Could not list trainers.")
		return
	}

	out := make([]TrainerCard, 0, len(trainers))
	for i := range trainers {
		t := &trainers[i]
		out = append(out, TrainerCard{
			ID:              t.ID,
			FullName:        t.User.FullName,
			Specialization:  t.Specialization,
			ExperienceYears: t.ExperienceYears,
			Bio:             t.Bio,
		})
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// STATIC PAGES
// ======================================================

type Page struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// The marketing copy lives in code; there is no CMS behind it.
var pages = map[string]Page{
	"index": {
		Slug:    "index",
		Title:   "FitPulse Gym",
		Content: "Train harder, recover smarter. Memberships for every level, from first-timers to competitive athletes.",
	},
	"about": {
		Slug:    "about",
		Title:   "About Us",
		Content: "FitPulse has been helping people get stronger since 2015. Certified trainers, modern equipment and a community that shows up.",
	},
	"contact": {
		Slug:    "contact",
		Title:   "Contact",
		Content: "Visit us at the main branch or write to hello@fitpulse.example. Front desk is open 05:00 to 21:00 every day.",
	},
	"programs": {
		Slug:    "programs",
		Title:   "Programs",
		Content: "Strength training, functional fitness, cardio zones and personal coaching. Ask any trainer for a free intro session.",
	},
}

func (h *PublicHandler) Page(c *gin.Context) {
	slug := c.Param("slug")

	page, ok := pages[slug]
	if !ok {
		httperr.NotFound(c, "page_not_found", "No such page.")
		return
	}

	c.JSON(http.StatusOK, page)
}
