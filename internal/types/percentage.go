package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Percentage is a decimal percentage value as sent by clients.
// Both 12.5 and "12.5%" decode to 12.5.
type Percentage struct {
	decimal.Decimal
}

// UnmarshalJSON strips an optional trailing percent sign before decoding.
func (p *Percentage) UnmarshalJSON(data []byte) error {
	value := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(data)), `"`))
	value = strings.TrimSpace(strings.TrimSuffix(value, "%"))

	d, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}

	p.Decimal = d
	return nil
}
