package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
	"gorm.io/gorm/clause"
)

// RegisterTrainerCourseRoutes registers the routes for trainer course assignments with
// the RouterGroup that is passed.
func RegisterTrainerCourseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTrainerCourseList)
		r.GET("", GetTrainerCourses)
		r.POST("", CreateTrainerCourse)
	}

	// Assignment with ID
	{
		r.OPTIONS("/:id", OptionsTrainerCourseDetail)
		r.GET("/:id", GetTrainerCourse)
		r.DELETE("/:id", DeleteTrainerCourse)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trainer Courses
// @Success		204
// @Router			/v1/trainer-courses [options]
func OptionsTrainerCourseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trainer Courses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trainer-courses/{id} [options]
func OptionsTrainerCourseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.TrainerCourse{}, httputil.OptionsGetDelete)
}

// @Summary		Assign trainer
// @Description	Assigns a trainer to a course
// @Tags			Trainer Courses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201			{object}	TrainerCourseResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			assignment	body		TrainerCourseEditable	true	"Assignment"
// @Router			/v1/trainer-courses [post]
func CreateTrainerCourse(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var editable TrainerCourseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	assignment := editable.model()
	err = models.DB.Omit(clause.Associations).Create(&assignment).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newTrainerCourse(c, assignment)
	c.JSON(http.StatusCreated, TrainerCourseResponse{Data: &data})
}

// @Summary		Get trainer assignments
// @Description	Returns trainer course assignments, newest first
// @Tags			Trainer Courses
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	TrainerCourseListResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			trainer	query		string	false	"Filter by trainer ID"
// @Param			course	query		string	false	"Filter by course ID"
// @Router			/v1/trainer-courses [get]
func GetTrainerCourses(c *gin.Context) {
	if _, ok := authorize(c, nil); !ok {
		return
	}

	var filter TrainerCourseQueryFilter
	err := c.ShouldBind(&filter)
	if err != nil {
		writeError(c, err)
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	var assignments []models.TrainerCourse
	err = models.DB.Order("assigned_at DESC").Where(&filterModel, queryFields...).Find(&assignments).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]TrainerCourse, 0, len(assignments))
	for _, a := range assignments {
		data = append(data, newTrainerCourse(c, a))
	}

	c.JSON(http.StatusOK, TrainerCourseListResponse{Data: data})
}

// @Summary		Get trainer assignment
// @Description	Returns a specific trainer course assignment
// @Tags			Trainer Courses
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	TrainerCourseResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trainer-courses/{id} [get]
func GetTrainerCourse(c *gin.Context) {
	if _, ok := authorize(c, nil); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var assignment models.TrainerCourse
	err := models.DB.First(&assignment, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newTrainerCourse(c, assignment)
	c.JSON(http.StatusOK, TrainerCourseResponse{Data: &data})
}

// @Summary		Delete trainer assignment
// @Description	Removes a trainer from a course
// @Tags			Trainer Courses
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trainer-courses/{id} [delete]
func DeleteTrainerCourse(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var assignment models.TrainerCourse
	err := models.DB.First(&assignment, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = models.DB.Delete(&assignment).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
