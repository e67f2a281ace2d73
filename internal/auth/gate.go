package auth

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RequireAdmin fails with ErrPermissionDenied unless the caller is an admin.
func RequireAdmin(i Identity) error {
	return RequireRole(i, RoleAdmin)
}

// RequireRole fails with ErrPermissionDenied unless the caller has one of the roles.
func RequireRole(i Identity, roles ...Role) error {
	if !slices.Contains(roles, i.Role) {
		return fmt.Errorf("%w for role %q", ErrPermissionDenied, i.Role)
	}

	return nil
}

// Owns fails with ErrPermissionDenied unless the profile owned by ownerUserID
// belongs to the caller. Admins own everything.
func Owns(i Identity, ownerUserID uuid.UUID) error {
	if i.IsAdmin() || i.UserID == ownerUserID {
		return nil
	}

	return fmt.Errorf("%w: the resource belongs to another user", ErrPermissionDenied)
}
