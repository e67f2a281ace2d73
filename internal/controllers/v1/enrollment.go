package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
)

// RegisterEnrollmentRoutes registers the routes for enrollments with
// the RouterGroup that is passed.
func RegisterEnrollmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEnrollmentList)
		r.GET("", GetEnrollments)
		r.POST("", CreateEnrollment)
	}

	// Enrollment with ID
	{
		r.OPTIONS("/:id", OptionsEnrollmentDetail)
		r.GET("/:id", GetEnrollment)
		r.PATCH("/:id", UpdateEnrollment)
		r.DELETE("/:id", DeleteEnrollment)
	}
}

func studentOrAdmin(i auth.Identity) error {
	return auth.RequireRole(i, auth.RoleAdmin, auth.RoleStudent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Enrollments
// @Success		204
// @Router			/v1/enrollments [options]
func OptionsEnrollmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Enrollments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/enrollments/{id} [options]
func OptionsEnrollmentDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Enrollment{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Enroll a student
// @Description	Enrolls a student in a course. Fails if the student is already enrolled or the course is full.
// @Tags			Enrollments
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201			{object}	EnrollmentResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			enrollment	body		EnrollmentEditable	true	"Enrollment"
// @Router			/v1/enrollments [post]
func CreateEnrollment(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var editable EnrollmentEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	enrollment, err := models.Enroll(models.DB, editable.model())
	if err != nil {
		writeError(c, err)
		return
	}

	data := newEnrollment(c, enrollment)
	c.JSON(http.StatusCreated, EnrollmentResponse{Data: &data})
}

// @Summary		Get enrollments
// @Description	Returns enrollments, most recent first. Students only see their own enrollments.
// @Tags			Enrollments
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	EnrollmentListResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			student	query		string	false	"Filter by student ID. Ignored for students"
// @Param			course	query		string	false	"Filter by course ID"
// @Router			/v1/enrollments [get]
func GetEnrollments(c *gin.Context) {
	identity, ok := authorize(c, studentOrAdmin)
	if !ok {
		return
	}

	var filter EnrollmentQueryFilter
	err := c.ShouldBind(&filter)
	if err != nil {
		writeError(c, err)
		return
	}

	f := models.EnrollmentFilter{
		StudentID: filter.StudentID.Ptr(),
		CourseID:  filter.CourseID.Ptr(),
	}

	if !identity.IsAdmin() {
		student, err := models.StudentForUser(models.DB, identity.UserID)
		if err != nil {
			writeError(c, err)
			return
		}
		f.StudentID = &student.ID
	}

	enrollments, err := models.ListEnrollments(models.DB, f)
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		data = append(data, newEnrollment(c, e))
	}

	c.JSON(http.StatusOK, EnrollmentListResponse{Data: data})
}

// @Summary		Get enrollment
// @Description	Returns a specific enrollment. Students can only read their own enrollments.
// @Tags			Enrollments
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	EnrollmentResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/enrollments/{id} [get]
func GetEnrollment(c *gin.Context) {
	identity, ok := authorize(c, studentOrAdmin)
	if !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	enrollment, err := models.GetEnrollment(models.DB, id)
	if err != nil {
		writeError(c, err)
		return
	}

	var student models.Student
	err = models.DB.First(&student, "id = ?", enrollment.StudentID).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = ownedBy(identity, student.UserID, "enrollment")
	if err != nil {
		writeError(c, err)
		return
	}

	data := newEnrollment(c, enrollment)
	c.JSON(http.StatusOK, EnrollmentResponse{Data: &data})
}

// @Summary		Update enrollment
// @Description	Reassigns an enrollment or changes its status. Duplicate and capacity checks do not apply.
// @Tags			Enrollments
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	EnrollmentResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			enrollment	body		EnrollmentPatchEditable	true	"Enrollment"
// @Router			/v1/enrollments/{id} [patch]
func UpdateEnrollment(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var editable EnrollmentPatchEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	enrollment, err := models.UpdateEnrollment(models.DB, id, editable.model())
	if err != nil {
		writeError(c, err)
		return
	}

	data := newEnrollment(c, enrollment)
	c.JSON(http.StatusOK, EnrollmentResponse{Data: &data})
}

// @Summary		Delete enrollment
// @Description	Deletes an enrollment and its fee transactions
// @Tags			Enrollments
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/enrollments/{id} [delete]
func DeleteEnrollment(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	err := models.DeleteEnrollment(models.DB, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
