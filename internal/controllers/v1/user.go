package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUserList)
		r.GET("", GetUsers)
		r.POST("", CreateUser)
	}

	// User with ID
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", GetUser)
		r.PATCH("/:id", UpdateUser)
		r.DELETE("/:id", DeleteUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.User{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create user
// @Description	Creates a user with any role
// @Tags			Users
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users [post]
func CreateUser(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var editable UserEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	user, err := models.CreateUser(models.DB, editable.model())
	if err != nil {
		writeError(c, err)
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Get users
// @Description	Returns all users ordered by username
// @Tags			Users
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	UserListResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			role	query		string	false	"Filter by role"
// @Router			/v1/users [get]
func GetUsers(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var filter UserQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBind(&filter)

	q := models.DB.Order("username ASC")
	if filter.Role != "" {
		role, err := auth.ParseRole(string(filter.Role))
		if err != nil {
			writeError(c, err)
			return
		}
		q = q.Where("role = ?", role)
	}

	var users []models.User
	err := q.Find(&users).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]User, 0, len(users))
	for _, u := range users {
		data = append(data, newUser(c, u))
	}

	c.JSON(http.StatusOK, UserListResponse{Data: data})
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [get]
func GetUser(c *gin.Context) {
	identity, ok := authorize(c, nil)
	if !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	err := auth.Owns(identity, id)
	if err != nil {
		writeError(c, err)
		return
	}

	var user models.User
	err = models.DB.First(&user, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update user
// @Description	Update an existing user. Only values to be updated need to be specified.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			user	body		UserPatchEditable	true	"User"
// @Router			/v1/users/{id} [patch]
func UpdateUser(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var editable UserPatchEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	user, err := models.UpdateUser(models.DB, id, editable.model())
	if err != nil {
		writeError(c, err)
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Delete user
// @Description	Deletes a user together with its trainer or student profile
// @Tags			Users
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var user models.User
	err := models.DB.First(&user, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = models.DB.Delete(&user).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
