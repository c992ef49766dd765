package service

import "health-insurance-backend/internal/models"

// Identity is the authenticated caller, threaded explicitly into every
// service call. There is no ambient per-request user state.
type Identity struct {
	UserID      uint
	Role        string
	IsSuperuser bool
}

// HasRole reports whether the identity's role is in the allow-list.
// Superusers always pass: they are normalized to the admin role on save, and
// the gate honors the flag directly as well.
func (id Identity) HasRole(roles ...string) bool {
	if id.IsSuperuser {
		return true
	}
	for _, r := range roles {
		if id.Role == r {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the caller is an administrator or superuser.
func (id Identity) IsAdmin() bool {
	return id.HasRole(models.RoleAdmin)
}
