package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitpulsehq/gym-manager/internal/domain/role"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/middleware"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
	"github.com/fitpulsehq/gym-manager/internal/validators"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// --------- Requests ---------

type UpdateMeRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Address     *string `json:"address,omitempty"`

	EmergencyContact *string `json:"emergency_contact,omitempty"`
	Specialization   *string `json:"specialization,omitempty"`
	Bio              *string `json:"bio,omitempty"`
	ExperienceYears  *int    `json:"experience_years,omitempty"`
	Department       *string `json:"department,omitempty"`
}

// --------- Handlers ---------

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Account not found.")
		return
	}

	var profile models.Profile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"user": user, "profile": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"profile": profile,
		"age":     profile.Age(timezone.Today()),
	})
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Account not found.")
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		if *req.Phone != "" && !validators.IsPhoneValid(*req.Phone) {
			httperr.BadRequest(c, "invalid_phone", "Phone number must be 9 to 15 digits, optionally prefixed by +.")
			return
		}
		user.Phone = *req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not save the account.")
		return
	}

	var profile models.Profile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"user": user, "profile": nil})
		return
	}

	if req.DateOfBirth != nil {
		dob, err := time.ParseInLocation("2006-01-02", *req.DateOfBirth, timezone.Location(timezone.DefaultTimezone))
		if err != nil {
			httperr.BadRequest(c, "invalid_date_of_birth", "Date of birth must be YYYY-MM-DD.")
			return
		}
		profile.DateOfBirth = &dob
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}

	// role-specific fields only apply to the matching variant
	switch role.Kind(profile.Role) {
	case role.Member:
		if req.EmergencyContact != nil {
			profile.EmergencyContact = *req.EmergencyContact
		}
	case role.Trainer:
		if req.Specialization != nil {
			profile.Specialization = *req.Specialization
		}
		if req.Bio != nil {
			profile.Bio = *req.Bio
		}
		if req.ExperienceYears != nil {
			if *req.ExperienceYears < 0 {
				httperr.BadRequest(c, "invalid_experience_years", "Experience years cannot be negative.")
				return
			}
			profile.ExperienceYears = *req.ExperienceYears
		}
	case role.Staff:
		if req.Department != nil {
			profile.Department = *req.Department
		}
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not save the profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"profile": profile,
	})
}
