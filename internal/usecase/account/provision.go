package account

import (
	"context"

	"github.com/fitpulsehq/gym-manager/internal/domain/role"
	"github.com/fitpulsehq/gym-manager/internal/httperr"
	"github.com/fitpulsehq/gym-manager/internal/models"
	"github.com/fitpulsehq/gym-manager/internal/timezone"
)

type Repository interface {
	HasProfile(ctx context.Context, userID uint) (bool, error)
	CreateProfile(ctx context.Context, p *models.Profile) error
}

// ProvisionDefaultRole gives a freshly verified user (or a bootstrapped
// superuser) a member profile. Called explicitly from the verification
// handler; a user who already holds any role is left untouched.
type ProvisionDefaultRole struct {
	repo Repository
}

func NewProvisionDefaultRole(repo Repository) *ProvisionDefaultRole {
	return &ProvisionDefaultRole{repo: repo}
}

func (uc *ProvisionDefaultRole) Execute(
	ctx context.Context,
	user *models.User,
) (*models.Profile, error) {

	has, err := uc.repo.HasProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, nil
	}

	profile := &models.Profile{
		UserID:     user.ID,
		Role:       string(role.Member),
		IsActive:   true,
		JoinedDate: timezone.Today(),
	}

	if err := uc.repo.CreateProfile(ctx, profile); err != nil {
		// lost a race with another provisioning call: the role exists
		if httperr.IsUniqueViolation(err) {
			return nil, nil
		}
		return nil, err
	}

	return profile, nil
}
