package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/models"
)

// writeError sends the error with the matching HTTP status.
func writeError(c *gin.Context, err error) {
	c.JSON(status(err), httpError{
		Error: err.Error(),
	})
}

// authorize returns the identity of the caller if check accepts it. A nil check
// accepts every authenticated caller.
//
// If the caller is rejected, the error response has been written and ok is false.
func authorize(c *gin.Context, check func(auth.Identity) error) (identity auth.Identity, ok bool) {
	identity, err := auth.Current(c)
	if err != nil {
		writeError(c, err)
		return auth.Identity{}, false
	}

	if check != nil {
		err = check(identity)
		if err != nil {
			writeError(c, err)
			return auth.Identity{}, false
		}
	}

	return identity, true
}

// ownedBy checks that the caller may read a resource owned by the user with ID owner.
// Callers that may not read it get the same error as for a resource that does not exist.
func ownedBy(identity auth.Identity, owner uuid.UUID, resource string) error {
	if auth.Owns(identity, owner) != nil {
		return hidden(resource)
	}

	return nil
}

// hidden is the not found error for a resource the caller may not read.
func hidden(resource string) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, resource)
}

// bindID parses the ID from the URI. If this fails, the error response has been written.
func bindID(c *gin.Context) (uuid.UUID, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		writeError(c, err)
		return uuid.Nil, false
	}

	return uri.ID.UUID, true
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.User | models.Trainer | models.Student | models.Course | models.ClassSchedule | models.TrainerCourse | models.TrainerSalary | models.Enrollment | models.FeeTransaction | models.Certificate](c *gin.Context, resource R, options gin.HandlerFunc) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	err := models.DB.First(&resource, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	options(c)
}
