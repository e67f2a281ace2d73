package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/traininghub/backend/internal/types"
	"gorm.io/gorm"
)

// checkAmount verifies that d fits a DECIMAL(digits, places) column.
func checkAmount(field string, d decimal.Decimal, digits, places int32) error {
	if !d.Equal(d.Round(places)) {
		return invalid("%s must not have more than %d decimal places", field, places)
	}

	if d.Abs().GreaterThanOrEqual(decimal.New(1, digits-places)) {
		return invalid("%s must not have more than %d digits before the decimal point", field, digits-places)
	}

	return nil
}

// parseDate parses a YYYY-MM-DD date sent for field.
func parseDate(field, value string) (types.Date, error) {
	d, err := types.ParseDate(value)
	if err != nil {
		return types.Date{}, invalid("invalid %s format. Use YYYY-MM-DD", field)
	}

	return d, nil
}

// mustExist loads the resource with the given ID into model.
// The query callback turns a missing row into ErrResourceNotFound.
func mustExist(tx *gorm.DB, model any, id uuid.UUID) error {
	return tx.Session(&gorm.Session{NewDB: true}).First(model, "id = ?", id).Error
}
