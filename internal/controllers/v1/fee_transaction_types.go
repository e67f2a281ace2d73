package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/traininghub/backend/internal/models"
	"github.com/traininghub/backend/internal/types"
	th_uuid "github.com/traininghub/backend/internal/uuid"
)

// FeeTransactionEditable contains all fields needed to record a payment
type FeeTransactionEditable struct {
	EnrollmentID uuid.UUID            `json:"enrollmentId" example:"6e0f1d5c-0a63-4d93-a2f6-0c2f4c5d8e01"`             // ID of the enrollment the payment is for
	Amount       *decimal.Decimal     `json:"amount" swaggertype:"string" example:"400.00"`                            // Amount paid. Must not exceed the course fee
	Method       models.PaymentMethod `json:"method" example:"BANK_TRANSFER" enums:"ONLINE,CASH,BANK_TRANSFER"`        // Payment method
	PaymentDate  string               `json:"paymentDate" example:"2024-02-10"`                                        // Date of the payment, YYYY-MM-DD
	Remarks      string               `json:"remarks" example:"First installment" binding:"max=1000" default:""`       // Free text notes
}

func (e FeeTransactionEditable) model() models.FeeTransactionCreate {
	return models.FeeTransactionCreate{
		EnrollmentID: e.EnrollmentID,
		Amount:       e.Amount,
		Method:       e.Method,
		PaymentDate:  e.PaymentDate,
		Remarks:      e.Remarks,
	}
}

type FeeTransactionLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/fee-transactions/9a8d3c7e-2f1b-4a5c-8e6d-7b9a0c1d2e3f"` // The transaction itself
	Enrollment string `json:"enrollment" example:"https://example.com/api/v1/enrollments/6e0f1d5c-0a63-4d93-a2f6-0c2f4c5d8e01"` // The enrollment the payment is for
}

type FeeTransaction struct {
	models.DefaultModel
	EnrollmentID uuid.UUID            `json:"enrollmentId" example:"6e0f1d5c-0a63-4d93-a2f6-0c2f4c5d8e01"`
	Amount       string               `json:"amount" example:"400.00"`
	Method       models.PaymentMethod `json:"method" example:"BANK_TRANSFER"`
	PaymentDate  types.Date           `json:"paymentDate" swaggertype:"string" example:"2024-02-10"`
	Remarks      string               `json:"remarks" example:"First installment"`
	Links        FeeTransactionLinks  `json:"links"`
}

func newFeeTransaction(c *gin.Context, model models.FeeTransaction) FeeTransaction {
	url := c.GetString(string(models.DBContextURL))

	return FeeTransaction{
		DefaultModel: model.DefaultModel,
		EnrollmentID: model.EnrollmentID,
		Amount:       money(model.Amount),
		Method:       model.Method,
		PaymentDate:  model.PaymentDate,
		Remarks:      model.Remarks,
		Links: FeeTransactionLinks{
			Self:       fmt.Sprintf("%s/v1/fee-transactions/%s", url, model.ID),
			Enrollment: fmt.Sprintf("%s/v1/enrollments/%s", url, model.EnrollmentID),
		},
	}
}

type FeeTransactionResponse struct {
	Data  *FeeTransaction `json:"data"`                                                          // Data for the transaction
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FeeTransactionListResponse struct {
	Data  []FeeTransaction `json:"data"`                                                          // List of transactions
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FeeTransactionQueryFilter struct {
	EnrollmentID th_uuid.UUID `form:"enrollment"` // By ID of the enrollment
	StudentID    th_uuid.UUID `form:"student"`    // By ID of the student. Admins only
}
