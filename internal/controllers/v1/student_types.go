package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/traininghub/backend/internal/models"
	"github.com/traininghub/backend/internal/types"
)

// StudentEditable contains all fields needed to create a student profile
type StudentEditable struct {
	UserID         uuid.UUID          `json:"userId" example:"4e4f2c1a-7c3b-4d1e-9f0a-2b3c4d5e6f70"` // ID of the user. The user must have the student role
	StudentType    models.StudentType `json:"studentType" example:"intern" enums:"intern,intern+trainer,trainer"`
	EnrollmentDate types.Date         `json:"enrollmentDate" swaggertype:"string" example:"2024-01-08"`
	JoinDate       types.Date         `json:"joinDate" swaggertype:"string" example:"2024-01-15"`
	EndDate        types.Date         `json:"endDate" swaggertype:"string" example:"2024-07-15"` // Must not be before the join date
}

func (e StudentEditable) model() models.Student {
	return models.Student{
		UserID:         e.UserID,
		StudentType:    e.StudentType,
		EnrollmentDate: e.EnrollmentDate,
		JoinDate:       e.JoinDate,
		EndDate:        e.EndDate,
	}
}

// StudentPatchEditable contains the fields of a student profile that can be updated
type StudentPatchEditable struct {
	StudentType    *models.StudentType `json:"studentType" example:"intern+trainer"`
	EnrollmentDate *types.Date         `json:"enrollmentDate" swaggertype:"string" example:"2024-01-08"`
	JoinDate       *types.Date         `json:"joinDate" swaggertype:"string" example:"2024-01-15"`
	EndDate        *types.Date         `json:"endDate" swaggertype:"string" example:"2024-07-15"`
}

func (e StudentPatchEditable) apply(s *models.Student) {
	if e.StudentType != nil {
		s.StudentType = *e.StudentType
	}

	if e.EnrollmentDate != nil {
		s.EnrollmentDate = *e.EnrollmentDate
	}

	if e.JoinDate != nil {
		s.JoinDate = *e.JoinDate
	}

	if e.EndDate != nil {
		s.EndDate = *e.EndDate
	}
}

type StudentLinks struct {
	Self            string `json:"self" example:"https://example.com/api/v1/students/0bd5b7a8-5f4e-4b5c-a5c7-1a7e0e4de2a2"`                         // The student itself
	User            string `json:"user" example:"https://example.com/api/v1/users/4e4f2c1a-7c3b-4d1e-9f0a-2b3c4d5e6f70"`                            // The user of the profile
	Enrollments     string `json:"enrollments" example:"https://example.com/api/v1/enrollments?student=0bd5b7a8-5f4e-4b5c-a5c7-1a7e0e4de2a2"`       // Enrollments of the student
	FeeTransactions string `json:"feeTransactions" example:"https://example.com/api/v1/fee-transactions?student=0bd5b7a8-5f4e-4b5c-a5c7-1a7e0e4de2a2"` // Payments of the student
}

type Student struct {
	models.DefaultModel
	UserID         uuid.UUID          `json:"userId" example:"4e4f2c1a-7c3b-4d1e-9f0a-2b3c4d5e6f70"`
	StudentType    models.StudentType `json:"studentType" example:"intern"`
	EnrollmentDate types.Date         `json:"enrollmentDate" swaggertype:"string" example:"2024-01-08"`
	JoinDate       types.Date         `json:"joinDate" swaggertype:"string" example:"2024-01-15"`
	EndDate        types.Date         `json:"endDate" swaggertype:"string" example:"2024-07-15"`
	Links          StudentLinks       `json:"links"`
}

func newStudent(c *gin.Context, model models.Student) Student {
	url := c.GetString(string(models.DBContextURL))

	return Student{
		DefaultModel:   model.DefaultModel,
		UserID:         model.UserID,
		StudentType:    model.StudentType,
		EnrollmentDate: model.EnrollmentDate,
		JoinDate:       model.JoinDate,
		EndDate:        model.EndDate,
		Links: StudentLinks{
			Self:            fmt.Sprintf("%s/v1/students/%s", url, model.ID),
			User:            fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
			Enrollments:     fmt.Sprintf("%s/v1/enrollments?student=%s", url, model.ID),
			FeeTransactions: fmt.Sprintf("%s/v1/fee-transactions?student=%s", url, model.ID),
		},
	}
}

type StudentResponse struct {
	Data  *Student `json:"data"`                                                          // Data for the student
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type StudentListResponse struct {
	Data  []Student `json:"data"`                                                          // List of students
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
