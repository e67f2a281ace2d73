package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
)

// RegisterFeeTransactionRoutes registers the routes for fee transactions with
// the RouterGroup that is passed.
func RegisterFeeTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFeeTransactionList)
		r.GET("", GetFeeTransactions)
		r.POST("", CreateFeeTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsFeeTransactionDetail)
		r.GET("/:id", GetFeeTransaction)
		r.DELETE("/:id", DeleteFeeTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Fee Transactions
// @Success		204
// @Router			/v1/fee-transactions [options]
func OptionsFeeTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Fee Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/fee-transactions/{id} [options]
func OptionsFeeTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.FeeTransaction{}, httputil.OptionsGetDelete)
}

// @Summary		Record payment
// @Description	Records a payment for an enrollment. A single payment must not exceed the course fee.
// @Tags			Fee Transactions
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201			{object}	FeeTransactionResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		FeeTransactionEditable	true	"Fee transaction"
// @Router			/v1/fee-transactions [post]
func CreateFeeTransaction(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var editable FeeTransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	transaction, err := models.RecordPayment(models.DB, editable.model())
	if err != nil {
		writeError(c, err)
		return
	}

	data := newFeeTransaction(c, transaction)
	c.JSON(http.StatusCreated, FeeTransactionResponse{Data: &data})
}

// @Summary		Get fee transactions
// @Description	Returns fee transactions, most recent payment first. Students only see payments for their own enrollments.
// @Tags			Fee Transactions
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	FeeTransactionListResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			enrollment	query		string	false	"Filter by enrollment ID"
// @Param			student		query		string	false	"Filter by student ID. Ignored for students"
// @Router			/v1/fee-transactions [get]
func GetFeeTransactions(c *gin.Context) {
	identity, ok := authorize(c, studentOrAdmin)
	if !ok {
		return
	}

	var filter FeeTransactionQueryFilter
	err := c.ShouldBind(&filter)
	if err != nil {
		writeError(c, err)
		return
	}

	f := models.FeeTransactionFilter{
		EnrollmentID: filter.EnrollmentID.Ptr(),
		StudentID:    filter.StudentID.Ptr(),
	}

	if !identity.IsAdmin() {
		student, err := models.StudentForUser(models.DB, identity.UserID)
		if err != nil {
			writeError(c, err)
			return
		}
		f.StudentID = &student.ID
	}

	transactions, err := models.ListFeeTransactions(models.DB, f)
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]FeeTransaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newFeeTransaction(c, t))
	}

	c.JSON(http.StatusOK, FeeTransactionListResponse{Data: data})
}

// @Summary		Get fee transaction
// @Description	Returns a specific fee transaction. Students can only read payments for their own enrollments.
// @Tags			Fee Transactions
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	FeeTransactionResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/fee-transactions/{id} [get]
func GetFeeTransaction(c *gin.Context) {
	identity, ok := authorize(c, studentOrAdmin)
	if !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	transaction, err := models.GetFeeTransaction(models.DB, id)
	if err != nil {
		writeError(c, err)
		return
	}

	var enrollment models.Enrollment
	err = models.DB.Preload("Student").First(&enrollment, "id = ?", transaction.EnrollmentID).Error
	if err != nil {
		writeError(c, err)
		return
	}

	err = ownedBy(identity, enrollment.Student.UserID, "fee transaction")
	if err != nil {
		writeError(c, err)
		return
	}

	data := newFeeTransaction(c, transaction)
	c.JSON(http.StatusOK, FeeTransactionResponse{Data: &data})
}

// @Summary		Delete fee transaction
// @Description	Deletes a fee transaction
// @Tags			Fee Transactions
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/fee-transactions/{id} [delete]
func DeleteFeeTransaction(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	err := models.DeleteFeeTransaction(models.DB, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
