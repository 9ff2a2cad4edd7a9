package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-supplied amount string into a decimal value.
// Malformed or empty input is an error, never silently coerced to zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", s, err)
	}
	return d, nil
}

// FormatAmount renders an amount with the 2-digit display precision used
// throughout tables and reports.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
