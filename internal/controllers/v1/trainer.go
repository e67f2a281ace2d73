package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
	"gorm.io/gorm/clause"
)

// RegisterTrainerRoutes registers the routes for trainer profiles with
// the RouterGroup that is passed.
func RegisterTrainerRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTrainerList)
		r.GET("", GetTrainers)
		r.POST("", CreateTrainer)
	}

	// Trainer with ID
	{
		r.OPTIONS("/:id", OptionsTrainerDetail)
		r.GET("/:id", GetTrainer)
		r.PATCH("/:id", UpdateTrainer)
		r.DELETE("/:id", DeleteTrainer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trainers
// @Success		204
// @Router			/v1/trainers [options]
func OptionsTrainerList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trainers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trainers/{id} [options]
func OptionsTrainerDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Trainer{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create trainer
// @Description	Creates the trainer profile for a user with the trainer role
// @Tags			Trainers
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	TrainerResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			trainer	body		TrainerEditable	true	"Trainer"
// @Router			/v1/trainers [post]
func CreateTrainer(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var editable TrainerEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	trainer := editable.model()
	err = models.DB.Omit(clause.Associations).Create(&trainer).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newTrainer(c, trainer)
	c.JSON(http.StatusCreated, TrainerResponse{Data: &data})
}

// @Summary		Get trainers
// @Description	Returns all trainer profiles
// @Tags			Trainers
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	TrainerListResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/trainers [get]
func GetTrainers(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var trainers []models.Trainer
	err := models.DB.Order("created_at ASC").Find(&trainers).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]Trainer, 0, len(trainers))
	for _, t := range trainers {
		data = append(data, newTrainer(c, t))
	}

	c.JSON(http.StatusOK, TrainerListResponse{Data: data})
}

// @Summary		Get trainer
// @Description	Returns a specific trainer profile. Trainers can read their own profile.
// @Tags			Trainers
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	TrainerResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trainers/{id} [get]
func GetTrainer(c *gin.Context) {
	identity, ok := authorize(c, nil)
	if !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var trainer models.Trainer
	err := models.DB.First(&trainer, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = ownedBy(identity, trainer.UserID, "trainer")
	if err != nil {
		writeError(c, err)
		return
	}

	data := newTrainer(c, trainer)
	c.JSON(http.StatusOK, TrainerResponse{Data: &data})
}

// @Summary		Update trainer
// @Description	Update an existing trainer profile. Only values to be updated need to be specified.
// @Tags			Trainers
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	TrainerResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			trainer	body		TrainerPatchEditable	true	"Trainer"
// @Router			/v1/trainers/{id} [patch]
func UpdateTrainer(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var trainer models.Trainer
	err := models.DB.First(&trainer, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	var editable TrainerPatchEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	editable.apply(&trainer)
	err = models.DB.Omit(clause.Associations).Save(&trainer).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data := newTrainer(c, trainer)
	c.JSON(http.StatusOK, TrainerResponse{Data: &data})
}

// @Summary		Delete trainer
// @Description	Deletes a trainer profile with its salaries, schedules and course assignments
// @Tags			Trainers
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trainers/{id} [delete]
func DeleteTrainer(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var trainer models.Trainer
	err := models.DB.First(&trainer, "id = ?", id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = models.DB.Delete(&trainer).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
