package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/models"
)

// @Summary		Delete everything
// @Description	Permanently deletes all resources, including all users
// @Tags			v1
// @Security		BearerAuth
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// Foreign keys are checked during cleanup,
	// add new models *before* any of the models
	// they reference
	resources := []any{
		models.Certificate{},
		models.FeeTransaction{},
		models.Enrollment{},
		models.TrainerSalary{},
		models.TrainerCourse{},
		models.ClassSchedule{},
		models.Course{},
		models.Student{},
		models.Trainer{},
		models.User{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Where("true").Delete(&model).Error
		if err != nil {
			writeError(c, err)
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	models.ResetCourseLocks()

	c.JSON(http.StatusNoContent, nil)
}
