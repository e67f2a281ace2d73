package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/traininghub/backend/internal/auth"
	"gorm.io/gorm"
)

type TrainerType string

const (
	TrainerTypeTrainer          TrainerType = "TRAINER"
	TrainerTypeTrainerDeveloper TrainerType = "TRAINER+DEVELOPER"
	TrainerTypeDeveloper        TrainerType = "DEVELOPER"
)

// Trainer is the trainer profile of a user.
type Trainer struct {
	DefaultModel
	User         User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID       uuid.UUID `gorm:"uniqueIndex"`
	TrainerType  TrainerType
	SalaryMethod SalaryType
	SalaryAmount decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
}

// BeforeSave verifies the trainer before it is written.
func (t *Trainer) BeforeSave(tx *gorm.DB) error {
	switch t.TrainerType {
	case TrainerTypeTrainer, TrainerTypeTrainerDeveloper, TrainerTypeDeveloper:
	default:
		return invalid("trainerType must be one of TRAINER, TRAINER+DEVELOPER, DEVELOPER")
	}

	switch t.SalaryMethod {
	case SalaryFixed, SalaryPercentage:
	default:
		return invalid("salaryMethod must be one of FIXED, PERCENTAGE")
	}

	if t.SalaryAmount.IsNegative() {
		return invalid("salaryAmount must not be negative")
	}

	if err := checkAmount("salaryAmount", t.SalaryAmount, 10, 2); err != nil {
		return err
	}

	return checkProfileUser(tx, t.UserID, auth.RoleTrainer)
}

// checkProfileUser verifies that the user exists and has the role
// the profile is for.
func checkProfileUser(tx *gorm.DB, userID uuid.UUID, role auth.Role) error {
	var user User
	err := mustExist(tx, &user, userID)
	if err != nil {
		return err
	}

	if user.Role != role {
		return invalid("user %s has role %s, the profile requires role %s", userID, user.Role, role)
	}

	return nil
}

// TrainerForUser returns the trainer profile of a user.
func TrainerForUser(db *gorm.DB, userID uuid.UUID) (Trainer, error) {
	var trainer Trainer
	err := db.Where("user_id = ?", userID).First(&trainer).Error
	if errors.Is(err, ErrResourceNotFound) {
		return Trainer{}, ErrTrainerProfileUnset
	} else if err != nil {
		return Trainer{}, err
	}

	return trainer, nil
}
