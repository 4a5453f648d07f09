package role

import "github.com/fitpulsehq/gym-manager/internal/models"

// ===============================
// Role Kinds
// ===============================

type Kind string

const (
	Member  Kind = "member"
	Trainer Kind = "trainer"
	Staff   Kind = "staff"
	Admin   Kind = "admin"
)

func Valid(k Kind) bool {
	switch k {
	case Member, Trainer, Staff, Admin:
		return true
	}
	return false
}

// ===============================
// Admin access levels
// ===============================

const (
	AccessFull    = "full"
	AccessLimited = "limited"
)

// ===============================
// Permissions
// ===============================

type Permission string

const (
	ManageUsers    Permission = "manage_users"
	ManagePayments Permission = "manage_payments"
	ViewReports    Permission = "view_reports"
)

// Can reports whether the principal holds the given admin permission.
// Superusers bypass all checks; full-access admins hold every permission;
// limited admins only the flags set on their profile.
func Can(user *models.User, profile *models.Profile, perm Permission) bool {
	if user != nil && user.IsSuperuser {
		return true
	}

	if profile == nil || Kind(profile.Role) != Admin {
		return false
	}

	if profile.AccessLevel == AccessFull {
		return true
	}

	switch perm {
	case ManageUsers:
		return profile.CanManageUsers
	case ManagePayments:
		return profile.CanManagePayments
	case ViewReports:
		return profile.CanViewReports
	}
	return false
}
