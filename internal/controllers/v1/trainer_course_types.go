package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/traininghub/backend/internal/models"
	th_uuid "github.com/traininghub/backend/internal/uuid"
)

// TrainerCourseEditable contains all fields needed to assign a trainer to a course
type TrainerCourseEditable struct {
	TrainerID  uuid.UUID `json:"trainerId" example:"a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"` // ID of the trainer
	CourseID   uuid.UUID `json:"courseId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`  // ID of the course
	AssignedAt time.Time `json:"assignedAt" example:"2024-01-02T08:00:00Z"`               // Time of the assignment. Defaults to now
}

func (e TrainerCourseEditable) model() models.TrainerCourse {
	return models.TrainerCourse{
		TrainerID:  e.TrainerID,
		CourseID:   e.CourseID,
		AssignedAt: e.AssignedAt,
	}
}

type TrainerCourseLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/trainer-courses/c3d4e5f6-a7b8-4c9d-8e0f-1a2b3c4d5e6f"` // The assignment itself
	Trainer string `json:"trainer" example:"https://example.com/api/v1/trainers/a7ff4a6a-6b2f-4d2b-8a53-3f4e2e8a90a1"`     // The trainer
	Course  string `json:"course" example:"https://example.com/api/v1/courses/3b1ea324-d438-4419-882a-2fc91d71772f"`       // The course
}

type TrainerCourse struct {
	models.DefaultModel
	TrainerCourseEditable
	Links TrainerCourseLinks `json:"links"`
}

func newTrainerCourse(c *gin.Context, model models.TrainerCourse) TrainerCourse {
	url := c.GetString(string(models.DBContextURL))

	return TrainerCourse{
		DefaultModel: model.DefaultModel,
		TrainerCourseEditable: TrainerCourseEditable{
			TrainerID:  model.TrainerID,
			CourseID:   model.CourseID,
			AssignedAt: model.AssignedAt,
		},
		Links: TrainerCourseLinks{
			Self:    fmt.Sprintf("%s/v1/trainer-courses/%s", url, model.ID),
			Trainer: fmt.Sprintf("%s/v1/trainers/%s", url, model.TrainerID),
			Course:  fmt.Sprintf("%s/v1/courses/%s", url, model.CourseID),
		},
	}
}

type TrainerCourseResponse struct {
	Data  *TrainerCourse `json:"data"`                                                          // Data for the assignment
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TrainerCourseListResponse struct {
	Data  []TrainerCourse `json:"data"`                                                          // List of assignments
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TrainerCourseQueryFilter struct {
	TrainerID th_uuid.UUID `form:"trainer"` // By ID of the trainer
	CourseID  th_uuid.UUID `form:"course"`  // By ID of the course
}

func (f TrainerCourseQueryFilter) model() models.TrainerCourse {
	return models.TrainerCourse{
		TrainerID: f.TrainerID.UUID,
		CourseID:  f.CourseID.UUID,
	}
}
