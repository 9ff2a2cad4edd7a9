// Package dateutils provides the date operations shared by the ledger
// engine and its reports.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutISO is the canonical storage layout for transaction dates.
const DateLayoutISO = "2006-01-02"

// acceptedFormats is the list of layouts tried when parsing user input.
var acceptedFormats = []string{
	DateLayoutISO,
	"02.01.2006",
	"02/01/2006",
	"2006/01/02",
	"2-Jan-2006",
	"Jan 2, 2006",
}

// ParseDate parses a date string using the accepted input layouts.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range acceptedFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ComposeISODate builds the canonical date string from decomposed parts
// and validates that they form a real calendar date.
func ComposeISODate(year, month, day int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("month out of range: %d", month)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", fmt.Errorf("invalid calendar date: %04d-%02d-%02d", year, month, day)
	}
	return t.Format(DateLayoutISO), nil
}

// Decompose splits an ISO date string into its year, month and day.
func Decompose(dateStr string) (year, month, day int, err error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(dateStr))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("unable to decompose date '%s': %w", dateStr, err)
	}
	return t.Year(), int(t.Month()), t.Day(), nil
}
