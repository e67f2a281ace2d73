package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
)

// RegisterSalaryRoutes registers the routes for trainer salaries with
// the RouterGroup that is passed.
func RegisterSalaryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSalaryList)
		r.GET("", GetSalaries)
		r.POST("", CreateSalary)
	}

	// Salary with ID
	{
		r.OPTIONS("/:id", OptionsSalaryDetail)
		r.GET("/:id", GetSalary)
		r.PATCH("/:id", UpdateSalary)
		r.DELETE("/:id", DeleteSalary)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Salaries
// @Success		204
// @Router			/v1/salaries [options]
func OptionsSalaryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Salaries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/salaries/{id} [options]
func OptionsSalaryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.TrainerSalary{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create salary
// @Description	Creates a salary for a trainer. Total amount, due amount and status are calculated.
// @Tags			Salaries
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	SalaryResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			salary	body		SalaryEditable	true	"Salary"
// @Router			/v1/salaries [post]
func CreateSalary(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var editable SalaryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	salary, err := models.CreateSalary(models.DB, editable.model())
	if err != nil {
		writeError(c, err)
		return
	}

	data := newSalary(c, salary)
	c.JSON(http.StatusCreated, SalaryResponse{Data: &data})
}

// @Summary		Get salaries
// @Description	Returns salaries, newest month first. Trainers only see their own salaries.
// @Tags			Salaries
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	SalaryListResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			trainer	query		string	false	"Filter by trainer ID. Ignored for trainers"
// @Router			/v1/salaries [get]
func GetSalaries(c *gin.Context) {
	identity, ok := authorize(c, func(i auth.Identity) error {
		return auth.RequireRole(i, auth.RoleAdmin, auth.RoleTrainer)
	})
	if !ok {
		return
	}

	var filter SalaryQueryFilter
	err := c.ShouldBind(&filter)
	if err != nil {
		writeError(c, err)
		return
	}

	var f models.SalaryFilter
	if identity.IsAdmin() {
		f.TrainerID = filter.TrainerID.Ptr()
	} else {
		trainer, err := models.TrainerForUser(models.DB, identity.UserID)
		if err != nil {
			writeError(c, err)
			return
		}
		f.TrainerID = &trainer.ID
	}

	salaries, err := models.ListSalaries(models.DB, f)
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]Salary, 0, len(salaries))
	for _, s := range salaries {
		data = append(data, newSalary(c, s))
	}

	c.JSON(http.StatusOK, SalaryListResponse{Data: data})
}

// @Summary		Get salary
// @Description	Returns a specific salary. Trainers can only read their own salaries.
// @Tags			Salaries
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	SalaryResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/salaries/{id} [get]
func GetSalary(c *gin.Context) {
	identity, ok := authorize(c, func(i auth.Identity) error {
		return auth.RequireRole(i, auth.RoleAdmin, auth.RoleTrainer)
	})
	if !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	salary, err := models.GetSalary(models.DB, id)
	if err != nil {
		writeError(c, err)
		return
	}

	var trainer models.Trainer
	err = models.DB.First(&trainer, "id = ?", salary.TrainerID).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = ownedBy(identity, trainer.UserID, "trainer salary")
	if err != nil {
		writeError(c, err)
		return
	}

	data := newSalary(c, salary)
	c.JSON(http.StatusOK, SalaryResponse{Data: &data})
}

// @Summary		Update salary
// @Description	Updates a salary. Only values to be updated need to be specified. Derived amounts are recalculated from the merged record.
// @Tags			Salaries
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	SalaryResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			salary	body		SalaryPatchEditable	true	"Salary"
// @Router			/v1/salaries/{id} [patch]
func UpdateSalary(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var editable SalaryPatchEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	salary, err := models.UpdateSalary(models.DB, id, editable.model())
	if err != nil {
		writeError(c, err)
		return
	}

	data := newSalary(c, salary)
	c.JSON(http.StatusOK, SalaryResponse{Data: &data})
}

// @Summary		Delete salary
// @Description	Deletes a salary
// @Tags			Salaries
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/salaries/{id} [delete]
func DeleteSalary(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	err := models.DeleteSalary(models.DB, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
