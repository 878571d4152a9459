package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrDateFormat  = errors.New("expected format DD.MM.YYYY")
	ErrDateInvalid = errors.New("no such calendar date")
)

// LooksLikeDate reports whether text has the DD.MM.YYYY shape worth
// attempting to parse: exactly two dot separators.
func LooksLikeDate(s string) bool {
	return strings.Count(s, ".") == 2
}

// ParseBirthDate parses "DD.MM.YYYY" into a date at UTC midnight.
// Components must be integers and name a real calendar date;
// 29.02 is accepted only in leap years.
func ParseBirthDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return time.Time{}, ErrDateFormat
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, p)
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components; reject anything
	// that did not round-trip.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDateInvalid, s)
	}
	return t, nil
}
