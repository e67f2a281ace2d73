package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
	"gorm.io/gorm/clause"
)

// RegisterStudentRoutes registers the routes for student profiles with
// the RouterGroup that is passed.
func RegisterStudentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsStudentList)
		r.GET("", GetStudents)
		r.POST("", CreateStudent)
	}

	// Student with ID
	{
		r.OPTIONS("/:id", OptionsStudentDetail)
		r.GET("/:id", GetStudent)
		r.PATCH("/:id", UpdateStudent)
		r.DELETE("/:id", DeleteStudent)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Students
// @Success		204
// @Router			/v1/students [options]
func OptionsStudentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Students
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/students/{id} [options]
func OptionsStudentDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Student{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create student
// @Description	Creates the student profile for a user with the student role
// @Tags			Students
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	StudentResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			student	body		StudentEditable	true	"Student"
// @Router			/v1/students [post]
func CreateStudent(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var editable StudentEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	student := editable.model()
	err = models.DB.Omit(clause.Associations).Create(&student).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newStudent(c, student)
	c.JSON(http.StatusCreated, StudentResponse{Data: &data})
}

// @Summary		Get students
// @Description	Returns all student profiles
// @Tags			Students
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	StudentListResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/students [get]
func GetStudents(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var students []models.Student
	err := models.DB.Order("join_date DESC").Order("created_at ASC").Find(&students).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]Student, 0, len(students))
	for _, s := range students {
		data = append(data, newStudent(c, s))
	}

	c.JSON(http.StatusOK, StudentListResponse{Data: data})
}

// @Summary		Get student
// @Description	Returns a specific student profile. Students can read their own profile.
// @Tags			Students
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	StudentResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/students/{id} [get]
func GetStudent(c *gin.Context) {
	identity, ok := authorize(c, nil)
	if !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var student models.Student
	err := models.DB.First(&student, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = ownedBy(identity, student.UserID, "student")
	if err != nil {
		writeError(c, err)
		return
	}

	data := newStudent(c, student)
	c.JSON(http.StatusOK, StudentResponse{Data: &data})
}

// @Summary		Update student
// @Description	Update an existing student profile. Only values to be updated need to be specified.
// @Tags			Students
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	StudentResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			student	body		StudentPatchEditable	true	"Student"
// @Router			/v1/students/{id} [patch]
func UpdateStudent(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var student models.Student
	err := models.DB.First(&student, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	var editable StudentPatchEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	editable.apply(&student)
	err = models.DB.Omit(clause.Associations).Save(&student).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newStudent(c, student)
	c.JSON(http.StatusOK, StudentResponse{Data: &data})
}

// @Summary		Delete student
// @Description	Deletes a student profile with its enrollments, payments and schedules
// @Tags			Students
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/students/{id} [delete]
func DeleteStudent(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var student models.Student
	err := models.DB.First(&student, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = models.DB.Delete(&student).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
