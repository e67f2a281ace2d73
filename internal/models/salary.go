package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/traininghub/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrainerSalary is the salary of a trainer for one month.
//
// TotalAmount, DueAmount and SalaryStatus are derived from the other
// fields on every save and can never be set directly.
type TrainerSalary struct {
	DefaultModel
	Trainer                Trainer   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TrainerID              uuid.UUID `gorm:"index"`
	Month                  types.Date
	SalaryType             SalaryType
	BaseAmount             decimal.Decimal     `gorm:"type:DECIMAL(10,2)"`
	CompletedStudentsCount *int
	PercentageRatio        decimal.NullDecimal `gorm:"type:DECIMAL(5,2)"`
	TotalAmount            decimal.Decimal     `gorm:"type:DECIMAL(10,2)"`
	PaidAmount             decimal.Decimal     `gorm:"type:DECIMAL(10,2)"`
	DueAmount              decimal.Decimal     `gorm:"type:DECIMAL(10,2)"`
	SalaryStatus           SalaryStatus
	PaymentDate            types.Date
}

// SalaryCreate contains the input for a new salary.
type SalaryCreate struct {
	TrainerID              uuid.UUID
	SalaryType             SalaryType
	Month                  string
	PaymentDate            string
	BaseAmount             *decimal.Decimal
	PaidAmount             *decimal.Decimal
	CompletedStudentsCount *int
	PercentageRatio        *decimal.Decimal
}

// SalaryPatch contains the fields of a salary to change. Nil fields keep
// their stored value.
type SalaryPatch struct {
	TrainerID              *uuid.UUID
	SalaryType             *SalaryType
	Month                  *string
	PaymentDate            *string
	BaseAmount             *decimal.Decimal
	PaidAmount             *decimal.Decimal
	CompletedStudentsCount *int
	PercentageRatio        *decimal.Decimal
}

// SalaryFilter restricts the salaries returned by ListSalaries.
type SalaryFilter struct {
	TrainerID *uuid.UUID
}

// BeforeSave recomputes the derived amounts so that they are consistent
// for every write.
func (s *TrainerSalary) BeforeSave(_ *gorm.DB) error {
	return s.recompute()
}

// recompute validates the inputs and derives total, due and status.
func (s *TrainerSalary) recompute() error {
	if s.BaseAmount.LessThanOrEqual(decimal.Zero) {
		return invalid("baseAmount cannot be zero or negative")
	}

	if err := checkAmount("baseAmount", s.BaseAmount, 10, 2); err != nil {
		return err
	}

	if s.PaidAmount.IsNegative() {
		return invalid("paidAmount must not be negative")
	}

	if err := checkAmount("paidAmount", s.PaidAmount, 10, 2); err != nil {
		return err
	}

	if s.SalaryType == SalaryPercentage && s.PercentageRatio.Valid {
		if err := checkAmount("percentageRatio", s.PercentageRatio.Decimal, 5, 2); err != nil {
			return err
		}
	}

	if s.Month.IsZero() {
		return invalid("month is required")
	}

	if s.PaymentDate.IsZero() {
		return invalid("paymentDate is required")
	}

	f, err := ComputeSalary(SalaryInputs{
		Type:                   s.SalaryType,
		BaseAmount:             s.BaseAmount,
		CompletedStudentsCount: s.CompletedStudentsCount,
		PercentageRatio:        s.PercentageRatio,
		PaidAmount:             s.PaidAmount,
	})
	if err != nil {
		return err
	}

	if err := checkAmount("totalAmount", f.TotalAmount, 10, 2); err != nil {
		return err
	}

	if err := checkAmount("dueAmount", f.DueAmount, 10, 2); err != nil {
		return err
	}

	s.CompletedStudentsCount = f.CompletedStudentsCount
	s.PercentageRatio = f.PercentageRatio
	s.TotalAmount = f.TotalAmount
	s.DueAmount = f.DueAmount
	s.SalaryStatus = f.Status
	return nil
}

// CreateSalary validates the input, derives the amounts and persists a new salary.
func CreateSalary(db *gorm.DB, in SalaryCreate) (TrainerSalary, error) {
	err := mustExist(db, &Trainer{}, in.TrainerID)
	if err != nil {
		return TrainerSalary{}, err
	}

	if in.BaseAmount == nil {
		return TrainerSalary{}, invalid("baseAmount is required")
	}

	s := TrainerSalary{
		TrainerID:              in.TrainerID,
		SalaryType:             in.SalaryType,
		BaseAmount:             *in.BaseAmount,
		CompletedStudentsCount: in.CompletedStudentsCount,
	}

	if in.PaidAmount != nil {
		s.PaidAmount = *in.PaidAmount
	}

	if in.PercentageRatio != nil {
		s.PercentageRatio = decimal.NewNullDecimal(*in.PercentageRatio)
	}

	s.Month, err = parseDate("month", in.Month)
	if err != nil {
		return TrainerSalary{}, err
	}

	s.PaymentDate, err = parseDate("paymentDate", in.PaymentDate)
	if err != nil {
		return TrainerSalary{}, err
	}

	// Fail before touching the database
	err = s.recompute()
	if err != nil {
		return TrainerSalary{}, err
	}

	err = db.Omit(clause.Associations).Create(&s).Error
	if err != nil {
		return TrainerSalary{}, err
	}

	ledgerWrites.WithLabelValues("salary", "create").Inc()
	return s, nil
}

// UpdateSalary merges the patch into the stored salary and recomputes
// the derived amounts from the merged state.
func UpdateSalary(db *gorm.DB, id uuid.UUID, p SalaryPatch) (TrainerSalary, error) {
	s, err := GetSalary(db, id)
	if err != nil {
		return TrainerSalary{}, err
	}

	if p.TrainerID != nil {
		err = mustExist(db, &Trainer{}, *p.TrainerID)
		if err != nil {
			return TrainerSalary{}, err
		}
		s.TrainerID = *p.TrainerID
	}

	if p.Month != nil {
		s.Month, err = parseDate("month", *p.Month)
		if err != nil {
			return TrainerSalary{}, err
		}
	}

	if p.PaymentDate != nil {
		s.PaymentDate, err = parseDate("paymentDate", *p.PaymentDate)
		if err != nil {
			return TrainerSalary{}, err
		}
	}

	setIfPresent(&s.SalaryType, p.SalaryType)
	setIfPresent(&s.BaseAmount, p.BaseAmount)
	setIfPresent(&s.PaidAmount, p.PaidAmount)

	if p.CompletedStudentsCount != nil {
		count := *p.CompletedStudentsCount
		s.CompletedStudentsCount = &count
	}

	if p.PercentageRatio != nil {
		s.PercentageRatio = decimal.NewNullDecimal(*p.PercentageRatio)
	}

	err = s.recompute()
	if err != nil {
		return TrainerSalary{}, err
	}

	err = db.Omit(clause.Associations).Save(&s).Error
	if err != nil {
		return TrainerSalary{}, err
	}

	ledgerWrites.WithLabelValues("salary", "update").Inc()
	return s, nil
}

// GetSalary returns the salary with the given ID.
func GetSalary(db *gorm.DB, id uuid.UUID) (TrainerSalary, error) {
	var s TrainerSalary
	err := mustExist(db, &s, id)
	if err != nil {
		return TrainerSalary{}, err
	}

	return s, nil
}

// DeleteSalary deletes the salary with the given ID.
func DeleteSalary(db *gorm.DB, id uuid.UUID) error {
	s, err := GetSalary(db, id)
	if err != nil {
		return err
	}

	err = db.Delete(&s).Error
	if err != nil {
		return err
	}

	ledgerWrites.WithLabelValues("salary", "delete").Inc()
	return nil
}

// ListSalaries returns salaries, newest month first.
//
// If the filter names a trainer, that trainer must exist.
func ListSalaries(db *gorm.DB, filter SalaryFilter) ([]TrainerSalary, error) {
	query := db.Model(&TrainerSalary{})

	if filter.TrainerID != nil {
		err := mustExist(db, &Trainer{}, *filter.TrainerID)
		if err != nil {
			return nil, err
		}
		query = query.Where("trainer_id = ?", *filter.TrainerID)
	}

	salaries := []TrainerSalary{}
	err := query.Order("month DESC").Order("created_at DESC").Find(&salaries).Error
	if err != nil {
		return nil, err
	}

	return salaries, nil
}
