package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/types"
	"gorm.io/gorm"
)

type StudentType string

const (
	StudentTypeIntern        StudentType = "intern"
	StudentTypeInternTrainer StudentType = "intern+trainer"
	StudentTypeTrainer       StudentType = "trainer"
)

// Student is the student profile of a user.
type Student struct {
	DefaultModel
	User           User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID         uuid.UUID `gorm:"uniqueIndex"`
	StudentType    StudentType
	EnrollmentDate types.Date
	JoinDate       types.Date
	EndDate        types.Date
}

// BeforeSave verifies the student before it is written.
func (s *Student) BeforeSave(tx *gorm.DB) error {
	switch s.StudentType {
	case StudentTypeIntern, StudentTypeInternTrainer, StudentTypeTrainer:
	default:
		return invalid("studentType must be one of intern, intern+trainer, trainer")
	}

	if !s.EndDate.IsZero() && s.EndDate.Before(s.JoinDate) {
		return invalid("endDate must not be before joinDate")
	}

	return checkProfileUser(tx, s.UserID, auth.RoleStudent)
}

// StudentForUser returns the student profile of a user.
func StudentForUser(db *gorm.DB, userID uuid.UUID) (Student, error) {
	var student Student
	err := db.Where("user_id = ?", userID).First(&student).Error
	if errors.Is(err, ErrResourceNotFound) {
		return Student{}, ErrStudentProfileUnset
	} else if err != nil {
		return Student{}, err
	}

	return student, nil
}
