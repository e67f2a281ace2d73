package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultMaxStudents is the seat limit of a course when none is given.
const DefaultMaxStudents = 30

// Course is an offering students enroll in.
type Course struct {
	DefaultModel
	Title       string
	Description string
	Category    string `gorm:"index"`
	Duration    int
	FeeAmount   decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
	MaxStudents int
	IsActive    bool
}

// BeforeSave trims whitespace and verifies the course.
func (c *Course) BeforeSave(_ *gorm.DB) error {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.Category = strings.TrimSpace(c.Category)

	if c.Title == "" {
		return invalid("title is required")
	}

	if c.Duration < 0 {
		return invalid("duration must not be negative")
	}

	if c.FeeAmount.IsNegative() {
		return invalid("feeAmount must not be negative")
	}

	if err := checkAmount("feeAmount", c.FeeAmount, 10, 2); err != nil {
		return err
	}

	if c.MaxStudents < 0 {
		return invalid("maxStudents must not be negative")
	}

	return nil
}

// AfterDelete drops the enrollment lock of the course.
func (c *Course) AfterDelete(_ *gorm.DB) error {
	if c.ID != uuid.Nil {
		courseLocks.Delete(c.ID)
	}
	return nil
}

// HasSeatLimit reports if the course limits the number of active enrollments.
func (c Course) HasSeatLimit() bool {
	return c.MaxStudents > 0
}
