package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassSchedule is a shift in which a trainer teaches a course to a student.
type ClassSchedule struct {
	DefaultModel
	ShiftType string
	ShiftTime time.Time
	Student   Student   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	StudentID uuid.UUID `gorm:"index"`
	Course    Course    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CourseID  uuid.UUID `gorm:"index"`
	Trainer   Trainer   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TrainerID uuid.UUID `gorm:"index"`
}

// BeforeSave verifies that all referenced resources exist.
func (s *ClassSchedule) BeforeSave(tx *gorm.DB) error {
	s.ShiftType = strings.TrimSpace(s.ShiftType)
	if s.ShiftType == "" {
		return invalid("shiftType is required")
	}

	if s.ShiftTime.IsZero() {
		return invalid("shiftTime is required")
	}
	s.ShiftTime = s.ShiftTime.UTC()

	if err := mustExist(tx, &Student{}, s.StudentID); err != nil {
		return err
	}

	if err := mustExist(tx, &Course{}, s.CourseID); err != nil {
		return err
	}

	return mustExist(tx, &Trainer{}, s.TrainerID)
}
