package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/traininghub/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentMethod string

const (
	PaymentOnline       PaymentMethod = "ONLINE"
	PaymentCash         PaymentMethod = "CASH"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// Valid reports if the method is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentOnline, PaymentCash, PaymentBankTransfer:
		return true
	}
	return false
}

// FeeTransaction is a payment towards the fee of an enrollment.
type FeeTransaction struct {
	DefaultModel
	Enrollment   Enrollment      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	EnrollmentID uuid.UUID       `gorm:"index"`
	Amount       decimal.Decimal `gorm:"type:DECIMAL(30,2)"`
	Method       PaymentMethod
	PaymentDate  types.Date
	Remarks      string
}

// FeeTransactionCreate contains the input for a new payment.
type FeeTransactionCreate struct {
	EnrollmentID uuid.UUID
	Amount       *decimal.Decimal
	Method       PaymentMethod
	PaymentDate  string
	Remarks      string
}

// FeeTransactionFilter restricts the transactions returned by ListFeeTransactions.
type FeeTransactionFilter struct {
	EnrollmentID *uuid.UUID
	StudentID    *uuid.UUID
}

// RecordPayment validates a payment against the fee of the enrolled course
// and persists it.
//
// Each payment is checked on its own. Several payments for the same
// enrollment may add up to more than the course fee.
func RecordPayment(db *gorm.DB, in FeeTransactionCreate) (FeeTransaction, error) {
	var enrollment Enrollment
	err := db.Preload("Course").First(&enrollment, "id = ?", in.EnrollmentID).Error
	if err != nil {
		return FeeTransaction{}, err
	}

	if in.Amount == nil {
		return FeeTransaction{}, invalid("amount is required")
	}
	amount := *in.Amount

	if !amount.IsPositive() {
		return FeeTransaction{}, invalid("amount must be greater than zero")
	}

	if err := checkAmount("amount", amount, 30, 2); err != nil {
		return FeeTransaction{}, err
	}

	if !in.Method.Valid() {
		return FeeTransaction{}, invalid("method must be one of ONLINE, CASH, BANK_TRANSFER")
	}

	if amount.GreaterThan(enrollment.Course.FeeAmount) {
		return FeeTransaction{}, &FeeExceededError{Amount: amount, Fee: enrollment.Course.FeeAmount}
	}

	date, err := parseDate("paymentDate", in.PaymentDate)
	if err != nil {
		return FeeTransaction{}, err
	}

	t := FeeTransaction{
		EnrollmentID: in.EnrollmentID,
		Amount:       amount,
		Method:       in.Method,
		PaymentDate:  date,
		Remarks:      strings.TrimSpace(in.Remarks),
	}

	err = db.Omit(clause.Associations).Create(&t).Error
	if err != nil {
		return FeeTransaction{}, err
	}

	ledgerWrites.WithLabelValues("fee", "create").Inc()
	return t, nil
}

// GetFeeTransaction returns the transaction with the given ID.
func GetFeeTransaction(db *gorm.DB, id uuid.UUID) (FeeTransaction, error) {
	var t FeeTransaction
	err := mustExist(db, &t, id)
	if err != nil {
		return FeeTransaction{}, err
	}

	return t, nil
}

// DeleteFeeTransaction deletes the transaction with the given ID.
func DeleteFeeTransaction(db *gorm.DB, id uuid.UUID) error {
	t, err := GetFeeTransaction(db, id)
	if err != nil {
		return err
	}

	err = db.Delete(&t).Error
	if err != nil {
		return err
	}

	ledgerWrites.WithLabelValues("fee", "delete").Inc()
	return nil
}

// ListFeeTransactions returns transactions, most recent payment first.
func ListFeeTransactions(db *gorm.DB, filter FeeTransactionFilter) ([]FeeTransaction, error) {
	query := db.Model(&FeeTransaction{})

	if filter.EnrollmentID != nil {
		query = query.Where("fee_transactions.enrollment_id = ?", *filter.EnrollmentID)
	}

	if filter.StudentID != nil {
		query = query.
			Joins("JOIN enrollments ON enrollments.id = fee_transactions.enrollment_id").
			Where("enrollments.student_id = ?", *filter.StudentID)
	}

	transactions := []FeeTransaction{}
	err := query.Order("fee_transactions.payment_date DESC").Order("fee_transactions.created_at DESC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
