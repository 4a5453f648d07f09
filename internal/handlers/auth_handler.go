package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fitpulsehq/gym-manager/internal/cache"
	"github.com/fitpulsehq/gym-manager/internal/config"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/usecase/account"
	"github.com/fitpulsehq/gym-manager/internal/validators"
)

type AuthHandler struct {
	db        *gorm.DB
	config    *config.Config
	cache     *cache.Cache
	provision *account.ProvisionDefaultRole
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	cache *cache.Cache,
	provision *account.ProvisionDefaultRole,
) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, cache: cache, provision: provision}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	if req.Phone != "" && !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone number must be 9 to 15 digits, optionally prefixed by +.")
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user := models.User{
		Email:        email,
		Username:     username,
		FullName:     req.FullName,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "duplicate_user", "Email or username is already taken.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	// The verification mail carries this token; until a mailer is wired it
	// is logged and echoed so operators can forward it manually.
	token := uuid.NewString()
	if err := h.cache.StoreVerificationToken(c.Request.Context(), token, user.ID); err != nil {
		httperr.Internal(c, "failed_to_store_token", "Could not issue a verification token.")
		return
	}
	log.Printf("verification token for %s: %s", user.Email, token)

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"username":  user.Username,
			"full_name": user.FullName,
			"phone":     user.Phone,
		},
		"verification_token": token,
	})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Token is required.")
		return
	}

	userID, err := h.cache.ConsumeVerificationToken(c.Request.Context(), req.Token)
	if err != nil {
		httperr.Internal(c, "verification_failed", "Could not verify the token.")
		return
	}
	if userID == 0 {
		httperr.BadRequest(c, "invalid_or_expired_token", "The verification token is invalid or has expired.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Account not found.")
		return
	}

	if !user.IsVerified {
		user.IsVerified = true
		if err := h.db.Save(&user).Error; err != nil {
			httperr.Internal(c, "verification_failed", "Could not mark the account verified.")
			return
		}
	}

	profile, err := h.provision.Execute(c.Request.Context(), &user)
	if err != nil {
		httperr.Internal(c, "provisioning_failed", "Could not provision the member profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"is_verified": user.IsVerified,
		},
		"profile": profile,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not load the account.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	if !user.IsVerified {
		httperr.Unauthorized(c, "account_not_verified", "Verify your email before logging in.")
		return
	}

	var profile models.Profile
	roleName := ""
	if err := h.db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		roleName = profile.Role
	}

	token, err := h.generateToken(&user, roleName)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"username":     user.Username,
			"full_name":    user.FullName,
			"phone":        user.Phone,
			"role":         roleName,
			"is_superuser": user.IsSuperuser,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User, roleName string) (string, error) {
	claims := jwt.MapClaims{
		"sub":          user.ID,
		"role":         roleName,
		"is_superuser": user.IsSuperuser,
		"exp":          time.Now().Add(24 * time.Hour).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
