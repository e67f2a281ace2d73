package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainerCourse assigns a trainer to a course.
type TrainerCourse struct {
	DefaultModel
	Trainer    Trainer   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TrainerID  uuid.UUID `gorm:"index"`
	Course     Course    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CourseID   uuid.UUID `gorm:"index"`
	AssignedAt time.Time
}

// BeforeSave verifies that trainer and course exist.
func (a *TrainerCourse) BeforeSave(tx *gorm.DB) error {
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now().UTC()
	}

	if err := mustExist(tx, &Trainer{}, a.TrainerID); err != nil {
		return err
	}

	return mustExist(tx, &Course{}, a.CourseID)
}
