package models

import (
	"github.com/shopspring/decimal"
)

type SalaryType string

const (
	SalaryFixed      SalaryType = "FIXED"
	SalaryPercentage SalaryType = "PERCENTAGE"
)

type SalaryStatus string

const (
	SalaryPending SalaryStatus = "pending"
	SalaryPaid    SalaryStatus = "paid"
)

var hundred = decimal.NewFromInt(100)

// SalaryInputs are the values a salary is computed from.
type SalaryInputs struct {
	Type                   SalaryType
	BaseAmount             decimal.Decimal
	CompletedStudentsCount *int
	PercentageRatio        decimal.NullDecimal
	PaidAmount             decimal.Decimal
}

// SalaryFigures are the derived values of a salary. The type specific
// inputs are returned normalized: they are empty for FIXED salaries.
type SalaryFigures struct {
	CompletedStudentsCount *int
	PercentageRatio        decimal.NullDecimal
	TotalAmount            decimal.Decimal
	DueAmount              decimal.Decimal
	Status                 SalaryStatus
}

// ComputeSalary derives total, due and status of a salary.
//
// Amounts are rounded to cents with the midpoint rounded away from zero,
// so a raw total of 0.125 becomes 0.13.
func ComputeSalary(in SalaryInputs) (SalaryFigures, error) {
	var f SalaryFigures

	switch in.Type {
	case SalaryFixed:
		f.TotalAmount = in.BaseAmount.Round(2)

	case SalaryPercentage:
		if in.CompletedStudentsCount == nil || *in.CompletedStudentsCount <= 0 {
			return SalaryFigures{}, invalid("completedStudentsCount cannot be null or zero for PERCENTAGE type")
		}
		if !in.PercentageRatio.Valid || !in.PercentageRatio.Decimal.IsPositive() {
			return SalaryFigures{}, invalid("percentageRatio cannot be null or zero for PERCENTAGE type")
		}

		count := *in.CompletedStudentsCount
		f.CompletedStudentsCount = &count
		f.PercentageRatio = in.PercentageRatio
		f.TotalAmount = in.BaseAmount.
			Mul(decimal.NewFromInt(int64(count))).
			Mul(in.PercentageRatio.Decimal).
			Div(hundred).
			Round(2)

	default:
		return SalaryFigures{}, invalid("invalid salary type")
	}

	f.DueAmount = decimal.Max(f.TotalAmount.Sub(in.PaidAmount), decimal.Zero).Round(2)

	f.Status = SalaryPending
	if f.DueAmount.IsZero() {
		f.Status = SalaryPaid
	}

	return f, nil
}
