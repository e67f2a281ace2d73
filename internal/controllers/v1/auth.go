package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for authentication with the RouterGroup that is passed.
//
// Registration of the first admin and the login are reachable without a token, all
// other routes require the authenticate middleware.
func RegisterAuthRoutes(r *gin.RouterGroup, authenticate gin.HandlerFunc) {
	r.OPTIONS("/register-admin", httputil.OptionsPost)
	r.POST("/register-admin", RegisterAdmin)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login)

	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", authenticate, GetMe)
}

// @Summary		Register admin
// @Description	Creates the first admin user. Fails once any admin exists.
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	body		AdminRegistration	true	"Admin user"
// @Router			/v1/auth/register-admin [post]
func RegisterAdmin(c *gin.Context) {
	var editable AdminRegistration
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	user, err := models.RegisterAdmin(models.DB, editable.model())
	if err != nil {
		writeError(c, err)
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Str("user", user.ID.String()).Msg("registered admin")

	data := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Log in
// @Description	Exchanges email and password for an access token
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var credentials LoginEditable
	err := httputil.BindData(c, &credentials)
	if err != nil {
		writeError(c, err)
		return
	}

	user, err := models.Login(models.DB, credentials.Email, credentials.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, expires, err := auth.IssueToken(user.ID)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("issuing access token")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Data: &Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expires.Format(time.RFC3339),
		User:        newUser(c, user),
	}})
}

// @Summary		Current user
// @Description	Returns the user the access token was issued for
// @Tags			Authentication
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/auth/me [get]
func GetMe(c *gin.Context) {
	identity, ok := authorize(c, nil)
	if !ok {
		return
	}

	var user models.User
	err := models.DB.First(&user, "id = ?", identity.UserID).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
