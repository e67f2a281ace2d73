package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/traininghub/backend/internal/models"
	"github.com/traininghub/backend/internal/types"
	th_uuid "github.com/traininghub/backend/internal/uuid"
)

// EnrollmentEditable contains all fields needed to enroll a student
type EnrollmentEditable struct {
	StudentID      uuid.UUID  `json:"studentId" example:"0bd5b7a8-5f4e-4b5c-a5c7-1a7e0e4de2a2"`  // ID of the student
	CourseID       uuid.UUID  `json:"courseId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`   // ID of the course
	TrainerID      *uuid.UUID `json:"trainerId" example:"a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"`  // ID of the trainer, optional
	ScheduleID     *uuid.UUID `json:"scheduleId" example:"51cf7b5b-1f4e-4f0b-8d8a-5c2f2c7e1a11"` // ID of the class schedule, optional
	EnrollmentDate string     `json:"enrollmentDate" example:"2024-02-01"`                       // Date of the enrollment, YYYY-MM-DD
}

func (e EnrollmentEditable) model() models.EnrollmentCreate {
	return models.EnrollmentCreate{
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		TrainerID:      e.TrainerID,
		ScheduleID:     e.ScheduleID,
		EnrollmentDate: e.EnrollmentDate,
	}
}

// EnrollmentPatchEditable contains the fields of an enrollment that can be updated
type EnrollmentPatchEditable struct {
	StudentID      *uuid.UUID               `json:"studentId"`
	CourseID       *uuid.UUID               `json:"courseId"`
	TrainerID      *uuid.UUID               `json:"trainerId"`
	ScheduleID     *uuid.UUID               `json:"scheduleId"`
	Status         *models.EnrollmentStatus `json:"status" example:"completed" enums:"enrolled,completed,dropped"`
	EnrollmentDate *string                  `json:"enrollmentDate" example:"2024-02-01"`
}

func (e EnrollmentPatchEditable) model() models.EnrollmentPatch {
	return models.EnrollmentPatch{
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		TrainerID:      e.TrainerID,
		ScheduleID:     e.ScheduleID,
		Status:         e.Status,
		EnrollmentDate: e.EnrollmentDate,
	}
}

type EnrollmentLinks struct {
	Self            string `json:"self" example:"https://example.com/api/v1/enrollments/6e0f1d5c-0a63-4d93-a2f6-0c2f4c5d8e01"`                             // The enrollment itself
	Course          string `json:"course" example:"https://example.com/api/v1/courses/3b1ea324-d438-4419-882a-2fc91d71772f"`                               // The course
	FeeTransactions string `json:"feeTransactions" example:"https://example.com/api/v1/fee-transactions?enrollment=6e0f1d5c-0a63-4d93-a2f6-0c2f4c5d8e01"` // Payments for this enrollment
}

type Enrollment struct {
	models.DefaultModel
	StudentID      uuid.UUID               `json:"studentId" example:"0bd5b7a8-5f4e-4b5c-a5c7-1a7e0e4de2a2"`
	CourseID       uuid.UUID               `json:"courseId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	TrainerID      *uuid.UUID              `json:"trainerId" example:"a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"`
	ScheduleID     *uuid.UUID              `json:"scheduleId" example:"51cf7b5b-1f4e-4f0b-8d8a-5c2f2c7e1a11"`
	Status         models.EnrollmentStatus `json:"status" example:"enrolled"`
	EnrollmentDate types.Date              `json:"enrollmentDate" swaggertype:"string" example:"2024-02-01"`
	Links          EnrollmentLinks         `json:"links"`
}

func newEnrollment(c *gin.Context, model models.Enrollment) Enrollment {
	url := c.GetString(string(models.DBContextURL))

	return Enrollment{
		DefaultModel:   model.DefaultModel,
		StudentID:      model.StudentID,
		CourseID:       model.CourseID,
		TrainerID:      model.TrainerID,
		ScheduleID:     model.ScheduleID,
		Status:         model.Status,
		EnrollmentDate: model.EnrollmentDate,
		Links: EnrollmentLinks{
			Self:            fmt.Sprintf("%s/v1/enrollments/%s", url, model.ID),
			Course:          fmt.Sprintf("%s/v1/courses/%s", url, model.CourseID),
			FeeTransactions: fmt.Sprintf("%s/v1/fee-transactions?enrollment=%s", url, model.ID),
		},
	}
}

type EnrollmentResponse struct {
	Data  *Enrollment `json:"data"`                                                          // Data for the enrollment
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnrollmentListResponse struct {
	Data  []Enrollment `json:"data"`                                                          // List of enrollments
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnrollmentQueryFilter struct {
	StudentID th_uuid.UUID `form:"student"` // By ID of the student. Admins only
	CourseID  th_uuid.UUID `form:"course"`  // By ID of the course
}
