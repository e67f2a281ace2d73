package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterCourseRoutes registers the routes for courses with
// the RouterGroup that is passed.
func RegisterCourseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCourseList)
		r.GET("", GetCourses)
		r.POST("", CreateCourse)
	}

	// Course with ID
	{
		r.OPTIONS("/:id", OptionsCourseDetail)
		r.GET("/:id", GetCourse)
		r.PATCH("/:id", UpdateCourse)
		r.DELETE("/:id", DeleteCourse)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Courses
// @Success		204
// @Router			/v1/courses [options]
func OptionsCourseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Courses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/courses/{id} [options]
func OptionsCourseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Course{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create course
// @Description	Creates a new course
// @Tags			Courses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	CourseResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			course	body		CourseEditable	true	"Course"
// @Router			/v1/courses [post]
func CreateCourse(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var editable CourseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	course := editable.model()
	err = models.DB.Create(&course).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newCourse(c, course)
	c.JSON(http.StatusCreated, CourseResponse{Data: &data})
}

// @Summary		Get courses
// @Description	Returns the course catalog ordered by title. Readable by every authenticated user.
// @Tags			Courses
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	CourseListResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			title		query		string	false	"Filter by title"
// @Param			description	query		string	false	"Filter by description"
// @Param			category	query		string	false	"Filter by category"
// @Param			isActive	query		bool	false	"Is the course active?"
// @Param			search		query		string	false	"Search for this text in title and description"
// @Param			match		query		string	false	"Glob pattern the title must match, e.g. 'Go*'"
// @Param			offset		query		uint	false	"The offset of the first course returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of courses to return. Defaults to 50."
// @Router			/v1/courses [get]
func GetCourses(c *gin.Context) {
	if _, ok := authorize(c, nil); !ok {
		return
	}

	var filter CourseQueryFilter
	err := c.ShouldBind(&filter)
	if err != nil {
		writeError(c, err)
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Order("title ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Title, filter.Description, filter.Search)

	var courses []models.Course
	err = q.Find(&courses).Error
	if err != nil {
		writeError(c, err)
		return
	}

	// Glob patterns cannot be expressed in SQL portably
	if filter.Match != "" {
		courses = slices.DeleteFunc(courses, func(course models.Course) bool {
			return !glob.Glob(filter.Match, course.Title)
		})
	}

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	total := int64(len(courses))
	page := courses[min(int(filter.Offset), len(courses)):]
	if limit >= 0 && limit < len(page) {
		page = page[:limit]
	}

	data := make([]Course, 0, len(page))
	for _, course := range page {
		data = append(data, newCourse(c, course))
	}

	c.JSON(http.StatusOK, CourseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get course
// @Description	Returns a specific course
// @Tags			Courses
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	CourseResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/courses/{id} [get]
func GetCourse(c *gin.Context) {
	if _, ok := authorize(c, nil); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var course models.Course
	err := models.DB.First(&course, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newCourse(c, course)
	c.JSON(http.StatusOK, CourseResponse{Data: &data})
}

// @Summary		Update course
// @Description	Update an existing course. Only values to be updated need to be specified.
// @Tags			Courses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	CourseResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			course	body		CoursePatchEditable	true	"Course"
// @Router			/v1/courses/{id} [patch]
func UpdateCourse(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var course models.Course
	err := models.DB.First(&course, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	var editable CoursePatchEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	editable.apply(&course)
	err = models.DB.Save(&course).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newCourse(c, course)
	c.JSON(http.StatusOK, CourseResponse{Data: &data})
}

// @Summary		Delete course
// @Description	Deletes a course with its enrollments, payments, schedules and trainer assignments
// @Tags			Courses
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/courses/{id} [delete]
func DeleteCourse(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var course models.Course
	err := models.DB.First(&course, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = models.DB.Delete(&course).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
