package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/traininghub/backend/internal/models"
	th_uuid "github.com/traininghub/backend/internal/uuid"
)

// ScheduleEditable contains all user configurable parameters of a class schedule
type ScheduleEditable struct {
	ShiftType string    `json:"shiftType" example:"morning" binding:"max=50"`           // Name of the shift
	ShiftTime time.Time `json:"shiftTime" example:"2024-02-01T09:00:00Z"`              // Start of the shift
	StudentID uuid.UUID `json:"studentId" example:"0bd5b7a8-5f4e-4b5c-a5c7-1a7e0e4de2a2"` // ID of the student
	CourseID  uuid.UUID `json:"courseId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`  // ID of the course
	TrainerID uuid.UUID `json:"trainerId" example:"a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"` // ID of the trainer
}

func (e ScheduleEditable) model() models.ClassSchedule {
	return models.ClassSchedule{
		ShiftType: e.ShiftType,
		ShiftTime: e.ShiftTime,
		StudentID: e.StudentID,
		CourseID:  e.CourseID,
		TrainerID: e.TrainerID,
	}
}

// SchedulePatchEditable contains the fields of a class schedule that can be updated
type SchedulePatchEditable struct {
	ShiftType *string    `json:"shiftType" binding:"omitempty,max=50"`
	ShiftTime *time.Time `json:"shiftTime"`
	StudentID *uuid.UUID `json:"studentId"`
	CourseID  *uuid.UUID `json:"courseId"`
	TrainerID *uuid.UUID `json:"trainerId"`
}

func (e SchedulePatchEditable) apply(s *models.ClassSchedule) {
	if e.ShiftType != nil {
		s.ShiftType = *e.ShiftType
	}

	if e.ShiftTime != nil {
		s.ShiftTime = *e.ShiftTime
	}

	if e.StudentID != nil {
		s.StudentID = *e.StudentID
	}

	if e.CourseID != nil {
		s.CourseID = *e.CourseID
	}

	if e.TrainerID != nil {
		s.TrainerID = *e.TrainerID
	}
}

type ScheduleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/schedules/51cf7b5b-1f4e-4f0b-8d8a-5c2f2c7e1a11"` // The schedule itself
}

type Schedule struct {
	models.DefaultModel
	ScheduleEditable
	Links ScheduleLinks `json:"links"`
}

func newSchedule(c *gin.Context, model models.ClassSchedule) Schedule {
	url := c.GetString(string(models.DBContextURL))

	return Schedule{
		DefaultModel: model.DefaultModel,
		ScheduleEditable: ScheduleEditable{
			ShiftType: model.ShiftType,
			ShiftTime: model.ShiftTime,
			StudentID: model.StudentID,
			CourseID:  model.CourseID,
			TrainerID: model.TrainerID,
		},
		Links: ScheduleLinks{
			Self: fmt.Sprintf("%s/v1/schedules/%s", url, model.ID),
		},
	}
}

type ScheduleResponse struct {
	Data  *Schedule `json:"data"`                                                          // Data for the schedule
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ScheduleListResponse struct {
	Data  []Schedule `json:"data"`                                                          // List of schedules
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ScheduleQueryFilter struct {
	StudentID th_uuid.UUID `form:"student"` // By ID of the student
	CourseID  th_uuid.UUID `form:"course"`  // By ID of the course
	TrainerID th_uuid.UUID `form:"trainer"` // By ID of the trainer
}

func (f ScheduleQueryFilter) model() models.ClassSchedule {
	return models.ClassSchedule{
		StudentID: f.StudentID.UUID,
		CourseID:  f.CourseID.UUID,
		TrainerID: f.TrainerID.UUID,
	}
}
