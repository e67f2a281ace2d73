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

// SalaryEditable contains all fields needed to create a salary
type SalaryEditable struct {
	TrainerID              uuid.UUID         `json:"trainerId" example:"a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"`                                 // ID of the trainer the salary is for
	SalaryType             models.SalaryType `json:"salaryType" example:"PERCENTAGE" enums:"FIXED,PERCENTAGE"`                                // How the total amount is calculated
	Month                  string            `json:"month" example:"2024-03-01"`                                                              // The month the salary is for, YYYY-MM-DD
	PaymentDate            string            `json:"paymentDate" example:"2024-04-05"`                                                        // Date of the payment, YYYY-MM-DD
	BaseAmount             *decimal.Decimal  `json:"baseAmount" swaggertype:"string" example:"10000.00"`                                      // Fixed salary or amount per completed student
	PaidAmount             *decimal.Decimal  `json:"paidAmount" swaggertype:"string" example:"2500.00"`                                       // Amount already paid out
	CompletedStudentsCount *int              `json:"completedStudentsCount" example:"5"`                                                      // Students that completed the course. PERCENTAGE only
	PercentageRatio        *types.Percentage `json:"percentageRatio" swaggertype:"string" example:"12.5%"`                                    // Percentage of the base amount per student. PERCENTAGE only
}

func (e SalaryEditable) model() models.SalaryCreate {
	in := models.SalaryCreate{
		TrainerID:              e.TrainerID,
		SalaryType:             e.SalaryType,
		Month:                  e.Month,
		PaymentDate:            e.PaymentDate,
		BaseAmount:             e.BaseAmount,
		PaidAmount:             e.PaidAmount,
		CompletedStudentsCount: e.CompletedStudentsCount,
	}

	if e.PercentageRatio != nil {
		in.PercentageRatio = &e.PercentageRatio.Decimal
	}

	return in
}

// SalaryPatchEditable contains the fields of a salary that can be updated. Omitted fields keep their value.
type SalaryPatchEditable struct {
	TrainerID              *uuid.UUID         `json:"trainerId" example:"a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"`
	SalaryType             *models.SalaryType `json:"salaryType" example:"FIXED" enums:"FIXED,PERCENTAGE"`
	Month                  *string            `json:"month" example:"2024-03-01"`
	PaymentDate            *string            `json:"paymentDate" example:"2024-04-05"`
	BaseAmount             *decimal.Decimal   `json:"baseAmount" swaggertype:"string" example:"10000.00"`
	PaidAmount             *decimal.Decimal   `json:"paidAmount" swaggertype:"string" example:"10000.00"`
	CompletedStudentsCount *int               `json:"completedStudentsCount" example:"5"`
	PercentageRatio        *types.Percentage  `json:"percentageRatio" swaggertype:"string" example:"12.5"`
}

func (e SalaryPatchEditable) model() models.SalaryPatch {
	p := models.SalaryPatch{
		TrainerID:              e.TrainerID,
		SalaryType:             e.SalaryType,
		Month:                  e.Month,
		PaymentDate:            e.PaymentDate,
		BaseAmount:             e.BaseAmount,
		PaidAmount:             e.PaidAmount,
		CompletedStudentsCount: e.CompletedStudentsCount,
	}

	if e.PercentageRatio != nil {
		p.PercentageRatio = &e.PercentageRatio.Decimal
	}

	return p
}

type SalaryLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/salaries/1d3c2a36-8a6b-4f2c-9e11-5d0a6b5d1e7f"`    // The salary itself
	Trainer string `json:"trainer" example:"https://example.com/api/v1/trainers/a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"` // The trainer the salary is for
}

// Salary is the API representation of a trainer salary. All amounts have two decimal places.
type Salary struct {
	models.DefaultModel
	TrainerID              uuid.UUID           `json:"trainerId" example:"a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"`
	SalaryType             models.SalaryType   `json:"salaryType" example:"PERCENTAGE"`
	Month                  types.Date          `json:"month" swaggertype:"string" example:"2024-03-01"`
	PaymentDate            types.Date          `json:"paymentDate" swaggertype:"string" example:"2024-04-05"`
	BaseAmount             string              `json:"baseAmount" example:"10000.00"`
	CompletedStudentsCount *int                `json:"completedStudentsCount" example:"5"` // null for FIXED salaries
	PercentageRatio        *string             `json:"percentageRatio" example:"12.50"`    // null for FIXED salaries
	TotalAmount            string              `json:"totalAmount" example:"6250.00"`
	PaidAmount             string              `json:"paidAmount" example:"2500.00"`
	DueAmount              string              `json:"dueAmount" example:"3750.00"`
	SalaryStatus           models.SalaryStatus `json:"salaryStatus" example:"pending" enums:"pending,paid"`
	Links                  SalaryLinks         `json:"links"`
}

func newSalary(c *gin.Context, model models.TrainerSalary) Salary {
	url := c.GetString(string(models.DBContextURL))

	s := Salary{
		DefaultModel:           model.DefaultModel,
		TrainerID:              model.TrainerID,
		SalaryType:             model.SalaryType,
		Month:                  model.Month,
		PaymentDate:            model.PaymentDate,
		BaseAmount:             money(model.BaseAmount),
		CompletedStudentsCount: model.CompletedStudentsCount,
		TotalAmount:            money(model.TotalAmount),
		PaidAmount:             money(model.PaidAmount),
		DueAmount:              money(model.DueAmount),
		SalaryStatus:           model.SalaryStatus,
		Links: SalaryLinks{
			Self:    fmt.Sprintf("%s/v1/salaries/%s", url, model.ID),
			Trainer: fmt.Sprintf("%s/v1/trainers/%s", url, model.TrainerID),
		},
	}

	if model.PercentageRatio.Valid {
		ratio := money(model.PercentageRatio.Decimal)
		s.PercentageRatio = &ratio
	}

	return s
}

type SalaryResponse struct {
	Data  *Salary `json:"data"`                                                          // Data for the salary
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SalaryListResponse struct {
	Data  []Salary `json:"data"`                                                          // List of salaries
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SalaryQueryFilter struct {
	TrainerID th_uuid.UUID `form:"trainer"` // By ID of the trainer. Admins only
}
