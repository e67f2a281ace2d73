package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
	"gorm.io/gorm/clause"
)

// RegisterScheduleRoutes registers the routes for class schedules with
// the RouterGroup that is passed.
func RegisterScheduleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsScheduleList)
		r.GET("", GetSchedules)
		r.POST("", CreateSchedule)
	}

	// Schedule with ID
	{
		r.OPTIONS("/:id", OptionsScheduleDetail)
		r.GET("/:id", GetSchedule)
		r.PATCH("/:id", UpdateSchedule)
		r.DELETE("/:id", DeleteSchedule)
	}
}

// scheduleScope restricts trainers and students to their own schedules.
func scheduleScope(identity auth.Identity, filter *models.ClassSchedule, queryFields *[]any) error {
	switch identity.Role {
	case auth.RoleTrainer:
		trainer, err := models.TrainerForUser(models.DB, identity.UserID)
		if err != nil {
			return err
		}
		filter.TrainerID = trainer.ID
		*queryFields = append(*queryFields, "TrainerID")
	case auth.RoleStudent:
		student, err := models.StudentForUser(models.DB, identity.UserID)
		if err != nil {
			return err
		}
		filter.StudentID = student.ID
		*queryFields = append(*queryFields, "StudentID")
	}

	return nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schedules
// @Success		204
// @Router			/v1/schedules [options]
func OptionsScheduleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schedules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/schedules/{id} [options]
func OptionsScheduleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.ClassSchedule{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create schedule
// @Description	Creates a new class schedule
// @Tags			Schedules
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201			{object}	ScheduleResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			schedule	body		ScheduleEditable	true	"Schedule"
// @Router			/v1/schedules [post]
func CreateSchedule(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var editable ScheduleEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	schedule := editable.model()
	err = models.DB.Omit(clause.Associations).Create(&schedule).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newSchedule(c, schedule)
	c.JSON(http.StatusCreated, ScheduleResponse{Data: &data})
}

// @Summary		Get schedules
// @Description	Returns class schedules ordered by shift time. Trainers and students only see their own schedules.
// @Tags			Schedules
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	ScheduleListResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			student	query		string	false	"Filter by student ID"
// @Param			course	query		string	false	"Filter by course ID"
// @Param			trainer	query		string	false	"Filter by trainer ID"
// @Router			/v1/schedules [get]
func GetSchedules(c *gin.Context) {
	identity, ok := authorize(c, nil)
	if !ok {
		return
	}

	var filter ScheduleQueryFilter
	err := c.ShouldBind(&filter)
	if err != nil {
		writeError(c, err)
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	err = scheduleScope(identity, &filterModel, &queryFields)
	if err != nil {
		writeError(c, err)
		return
	}

	var schedules []models.ClassSchedule
	err = models.DB.Order("shift_time ASC").Where(&filterModel, queryFields...).Find(&schedules).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]Schedule, 0, len(schedules))
	for _, s := range schedules {
		data = append(data, newSchedule(c, s))
	}

	c.JSON(http.StatusOK, ScheduleListResponse{Data: data})
}

// @Summary		Get schedule
// @Description	Returns a specific class schedule. Trainers and students can read the schedules they take part in.
// @Tags			Schedules
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	ScheduleResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/schedules/{id} [get]
func GetSchedule(c *gin.Context) {
	identity, ok := authorize(c, nil)
	if !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var schedule models.ClassSchedule
	err := models.DB.Preload("Trainer").Preload("Student").First(&schedule, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	owner := schedule.Student.UserID
	if identity.Role == auth.RoleTrainer {
		owner = schedule.Trainer.UserID
	}

	err = ownedBy(identity, owner, "class schedule")
	if err != nil {
		writeError(c, err)
		return
	}

	data := newSchedule(c, schedule)
	c.JSON(http.StatusOK, ScheduleResponse{Data: &data})
}

// @Summary		Update schedule
// @Description	Update an existing class schedule. Only values to be updated need to be specified.
// @Tags			Schedules
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	ScheduleResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			schedule	body		SchedulePatchEditable	true	"Schedule"
// @Router			/v1/schedules/{id} [patch]
func UpdateSchedule(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var schedule models.ClassSchedule
	err := models.DB.First(&schedule, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	var editable SchedulePatchEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	editable.apply(&schedule)
	err = models.DB.Omit(clause.Associations).Save(&schedule).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newSchedule(c, schedule)
	c.JSON(http.StatusOK, ScheduleResponse{Data: &data})
}

// @Summary		Delete schedule
// @Description	Deletes a class schedule. Enrollments referencing it keep existing without a schedule.
// @Tags			Schedules
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/schedules/{id} [delete]
func DeleteSchedule(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var schedule models.ClassSchedule
	err := models.DB.First(&schedule, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = models.DB.Delete(&schedule).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
