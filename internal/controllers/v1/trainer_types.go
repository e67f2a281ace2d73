package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/traininghub/backend/internal/models"
)

// TrainerEditable contains all fields needed to create a trainer profile
type TrainerEditable struct {
	UserID       uuid.UUID          `json:"userId" example:"4e4f2c1a-7c3b-4d1e-9f0a-2b3c4d5e6f70"`                            // ID of the user. The user must have the trainer role
	TrainerType  models.TrainerType `json:"trainerType" example:"TRAINER" enums:"TRAINER,TRAINER+DEVELOPER,DEVELOPER"`
	SalaryMethod models.SalaryType  `json:"salaryMethod" example:"FIXED" enums:"FIXED,PERCENTAGE"`                           // Default salary type for the trainer
	SalaryAmount decimal.Decimal    `json:"salaryAmount" swaggertype:"string" example:"10000.00"`                            // Default base amount
}

func (e TrainerEditable) model() models.Trainer {
	return models.Trainer{
		UserID:       e.UserID,
		TrainerType:  e.TrainerType,
		SalaryMethod: e.SalaryMethod,
		SalaryAmount: e.SalaryAmount,
	}
}

// TrainerPatchEditable contains the fields of a trainer profile that can be updated
type TrainerPatchEditable struct {
	TrainerType  *models.TrainerType `json:"trainerType" example:"DEVELOPER"`
	SalaryMethod *models.SalaryType  `json:"salaryMethod" example:"PERCENTAGE"`
	SalaryAmount *decimal.Decimal    `json:"salaryAmount" swaggertype:"string" example:"500.00"`
}

func (e TrainerPatchEditable) apply(t *models.Trainer) {
	if e.TrainerType != nil {
		t.TrainerType = *e.TrainerType
	}

	if e.SalaryMethod != nil {
		t.SalaryMethod = *e.SalaryMethod
	}

	if e.SalaryAmount != nil {
		t.SalaryAmount = *e.SalaryAmount
	}
}

type TrainerLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/trainers/a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"`                  // The trainer itself
	User      string `json:"user" example:"https://example.com/api/v1/users/4e4f2c1a-7c3b-4d1e-9f0a-2b3c4d5e6f70"`                     // The user of the profile
	Salaries  string `json:"salaries" example:"https://example.com/api/v1/salaries?trainer=a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"`       // Salaries of the trainer
	Schedules string `json:"schedules" example:"https://example.com/api/v1/schedules?trainer=a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"`     // Class schedules of the trainer
	Courses   string `json:"courses" example:"https://example.com/api/v1/trainer-courses?trainer=a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"` // Course assignments of the trainer
}

type Trainer struct {
	models.DefaultModel
	UserID       uuid.UUID          `json:"userId" example:"4e4f2c1a-7c3b-4d1e-9f0a-2b3c4d5e6f70"`
	TrainerType  models.TrainerType `json:"trainerType" example:"TRAINER"`
	SalaryMethod models.SalaryType  `json:"salaryMethod" example:"FIXED"`
	SalaryAmount string             `json:"salaryAmount" example:"10000.00"`
	Links        TrainerLinks       `json:"links"`
}

func newTrainer(c *gin.Context, model models.Trainer) Trainer {
	url := c.GetString(string(models.DBContextURL))

	return Trainer{
		DefaultModel: model.DefaultModel,
		UserID:       model.UserID,
		TrainerType:  model.TrainerType,
		SalaryMethod: model.SalaryMethod,
		SalaryAmount: money(model.SalaryAmount),
		Links: TrainerLinks{
			Self:      fmt.Sprintf("%s/v1/trainers/%s", url, model.ID),
			User:      fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
			Salaries:  fmt.Sprintf("%s/v1/salaries?trainer=%s", url, model.ID),
			Schedules: fmt.Sprintf("%s/v1/schedules?trainer=%s", url, model.ID),
			Courses:   fmt.Sprintf("%s/v1/trainer-courses?trainer=%s", url, model.ID),
		},
	}
}

type TrainerResponse struct {
	Data  *Trainer `json:"data"`                                                          // Data for the trainer
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TrainerListResponse struct {
	Data  []Trainer `json:"data"`                                                          // List of trainers
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
