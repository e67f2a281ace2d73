package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextKey = "th-identity"

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports if the caller is an administrator.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// SetIdentity stores the identity on the request context.
func SetIdentity(c *gin.Context, i Identity) {
	c.Set(contextKey, i)
}

// Current returns the identity of the caller.
func Current(c *gin.Context) (Identity, error) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}

	i, ok := v.(Identity)
	if !ok || !i.Role.Valid() {
		return Identity{}, ErrUnauthenticated
	}

	return i, nil
}
