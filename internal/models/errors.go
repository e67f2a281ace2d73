package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/traininghub/backend/internal/auth"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
	ErrCapacity         = errors.New("capacity reached")
)

var (
	ErrAlreadyEnrolled     = fmt.Errorf("%w: student is already enrolled in this course", ErrConflict)
	ErrUsernameNotUnique   = fmt.Errorf("%w: the username is already taken", ErrConflict)
	ErrEmailNotUnique      = fmt.Errorf("%w: the email address is already in use", ErrConflict)
	ErrProfileExists       = fmt.Errorf("%w: the user already has a profile", ErrConflict)
	ErrReferenceNotExists  = fmt.Errorf("%w resource with the referenced ID", ErrResourceNotFound)
	ErrAdminAlreadyExists  = fmt.Errorf("%w: an admin user already exists", auth.ErrPermissionDenied)
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrTrainerProfileUnset = fmt.Errorf("%w trainer profile for the current user", ErrResourceNotFound)
	ErrStudentProfileUnset = fmt.Errorf("%w student profile for the current user", ErrResourceNotFound)
)

// ValidationError describes malformed or out-of-range input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// CapacityError is returned when a course has no free seats left.
type CapacityError struct {
	Max int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("course is full. Maximum %d students allowed.", e.Max)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

// FeeExceededError is returned when a single payment is larger than the course fee.
type FeeExceededError struct {
	Amount decimal.Decimal
	Fee    decimal.Decimal
}

func (e *FeeExceededError) Error() string {
	return fmt.Sprintf("payment amount %s exceeds course fee %s", e.Amount.StringFixed(2), e.Fee.StringFixed(2))
}

func (e *FeeExceededError) Unwrap() error {
	return ErrValidation
}
