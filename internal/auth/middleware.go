package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RoleLookup returns the stored role of a user. It returns ErrUnknownUser
// when the user does not exist.
type RoleLookup func(userID uuid.UUID) (Role, error)

// Authenticate verifies the bearer token of the request, resolves the
// caller's current role with lookup and stores the caller's Identity on
// the context. Requests without a valid token or for users that do not
// exist anymore are aborted with HTTP 401.
func Authenticate(lookup RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
			return
		}

		userID, err := ParseToken(strings.TrimSpace(token))
		if errors.Is(err, ErrNotConfigured) {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("authentication")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errLookupFailed.Error()})
			return
		} else if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("rejected access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		role, err := lookup(userID)
		if errors.Is(err, ErrUnknownUser) {
			log.Debug().Str("request-id", requestid.Get(c)).Str("user", userID.String()).Msg("access token for unknown user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrTokenInvalid.Error()})
			return
		} else if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("role lookup")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errLookupFailed.Error()})
			return
		}

		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrTokenInvalid.Error()})
			return
		}

		SetIdentity(c, Identity{UserID: userID, Role: role})
		c.Next()
	}
}
