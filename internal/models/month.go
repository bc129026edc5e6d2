package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

// Months are persisted and compared as zero-padded "YYYY-MM" strings,
// so lexical order equals calendar order.

// IsValidMonth checks that s has the YYYY-MM shape
func IsValidMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// MonthOf formats a point in time as its calendar month
func MonthOf(t time.Time) string {
	return t.Format("2006-01")
}

// AddMonths shifts a YYYY-MM month by n calendar months (n may be
// negative). Returns an error for malformed input.
func AddMonths(month string, n int) (string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return t.AddDate(0, n, 0).Format("2006-01"), nil
}

// MustAddMonths is AddMonths for months already known to be well formed,
// such as values produced by MonthOf. Panics on malformed input.
func MustAddMonths(month string, n int) string {
	shifted, err := AddMonths(month, n)
	if err != nil {
		panic(err)
	}
	return shifted
}
