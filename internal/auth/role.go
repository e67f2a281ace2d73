// Package auth resolves the caller of a request and decides what they may do.
//
// Callers authenticate with a signed JWT access token. The token carries the user ID and the role,
// which the Authenticate middleware stores on the gin context as an Identity. Controllers consult the
// gate functions in this package before running any model operation.
package auth

import (
	"fmt"
	"strings"
)

// Role is the role of a user. Only the constants below are valid roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleStudent Role = "student"
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleTrainer, RoleStudent}

// ParseRole parses a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}

	return r, nil
}

// Valid reports if the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTrainer, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
