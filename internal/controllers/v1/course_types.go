package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/traininghub/backend/internal/models"
)

// CourseEditable contains all user configurable parameters of a course
type CourseEditable struct {
	Title       string           `json:"title" example:"Go for backend developers" binding:"required,max=255"`   // Title of the course
	Description string           `json:"description" example:"Twelve weeks of services, testing and tooling"`    // Description of the course
	Category    string           `json:"category" example:"programming" binding:"max=100"`                       // Category of the course
	Duration    int              `json:"duration" example:"12" binding:"gte=0"`                                  // Duration in weeks
	FeeAmount   decimal.Decimal  `json:"feeAmount" swaggertype:"string" example:"400.00"`                        // Fee for the course. No single payment may exceed it
	MaxStudents *int             `json:"maxStudents" example:"30" binding:"omitempty,gte=0"`                     // Seat limit. 0 disables the limit, defaults to 30
	IsActive    *bool            `json:"isActive" example:"true"`                                                // Is the course open? Defaults to true
}

func (e CourseEditable) model() models.Course {
	course := models.Course{
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Duration:    e.Duration,
		FeeAmount:   e.FeeAmount,
		MaxStudents: models.DefaultMaxStudents,
		IsActive:    true,
	}

	if e.MaxStudents != nil {
		course.MaxStudents = *e.MaxStudents
	}

	if e.IsActive != nil {
		course.IsActive = *e.IsActive
	}

	return course
}

// CoursePatchEditable contains the fields of a course that can be updated
type CoursePatchEditable struct {
	Title       *string          `json:"title" binding:"omitempty,max=255"`
	Description *string          `json:"description"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	Duration    *int             `json:"duration" binding:"omitempty,gte=0"`
	FeeAmount   *decimal.Decimal `json:"feeAmount" swaggertype:"string" example:"450.00"`
	MaxStudents *int             `json:"maxStudents" binding:"omitempty,gte=0"`
	IsActive    *bool            `json:"isActive"`
}

func (e CoursePatchEditable) apply(c *models.Course) {
	if e.Title != nil {
		c.Title = *e.Title
	}

	if e.Description != nil {
		c.Description = *e.Description
	}

	if e.Category != nil {
		c.Category = *e.Category
	}

	if e.Duration != nil {
		c.Duration = *e.Duration
	}

	if e.FeeAmount != nil {
		c.FeeAmount = *e.FeeAmount
	}

	if e.MaxStudents != nil {
		c.MaxStudents = *e.MaxStudents
	}

	if e.IsActive != nil {
		c.IsActive = *e.IsActive
	}
}

type CourseLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/courses/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The course itself
	Enrollments string `json:"enrollments" example:"https://example.com/api/v1/enrollments?course=3b1ea324-d438-4419-882a-2fc91d71772f"` // Enrollments for the course
	Trainers    string `json:"trainers" example:"https://example.com/api/v1/trainer-courses?course=3b1ea324-d438-4419-882a-2fc91d71772f"` // Trainers assigned to the course
}

type Course struct {
	models.DefaultModel
	Title       string      `json:"title" example:"Go for backend developers"`
	Description string      `json:"description" example:"Twelve weeks of services, testing and tooling"`
	Category    string      `json:"category" example:"programming"`
	Duration    int         `json:"duration" example:"12"`
	FeeAmount   string      `json:"feeAmount" example:"400.00"`
	MaxStudents int         `json:"maxStudents" example:"30"`
	IsActive    bool        `json:"isActive" example:"true"`
	Links       CourseLinks `json:"links"`
}

func newCourse(c *gin.Context, model models.Course) Course {
	url := c.GetString(string(models.DBContextURL))

	return Course{
		DefaultModel: model.DefaultModel,
		Title:        model.Title,
		Description:  model.Description,
		Category:     model.Category,
		Duration:     model.Duration,
		FeeAmount:    money(model.FeeAmount),
		MaxStudents:  model.MaxStudents,
		IsActive:     model.IsActive,
		Links: CourseLinks{
			Self:        fmt.Sprintf("%s/v1/courses/%s", url, model.ID),
			Enrollments: fmt.Sprintf("%s/v1/enrollments?course=%s", url, model.ID),
			Trainers:    fmt.Sprintf("%s/v1/trainer-courses?course=%s", url, model.ID),
		},
	}
}

type CourseResponse struct {
	Data  *Course `json:"data"`                                                          // Data for the course
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CourseListResponse struct {
	Data       []Course    `json:"data"`                                                          // List of courses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CourseQueryFilter struct {
	Title       string `form:"title" filterField:"false"`       // By title
	Description string `form:"description" filterField:"false"` // By description
	Category    string `form:"category"`                        // By category
	IsActive    bool   `form:"isActive"`                        // Is the course active?
	Search      string `form:"search" filterField:"false"`      // By string in title or description
	Match       string `form:"match" filterField:"false"`       // By glob pattern on the title, e.g. "Go*"
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first course returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of courses to return. Defaults to 50.
}

func (f CourseQueryFilter) model() models.Course {
	return models.Course{
		Category: f.Category,
		IsActive: f.IsActive,
	}
}
