package domain

import (
	"fmt"
	"time"
)

// Countdown is the time remaining until a birthday, broken into civil units.
// Invariants: 0 <= Hours < 24, 0 <= Minutes < 60, 0 <= Seconds < 60.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// NextOccurrence returns the date, in the current or next calendar year,
// on which the birth date's month/day next occurs at or after today.
// A birthday falling today resolves to today. Feb 29 birth dates are
// observed on Mar 1 in non-leap years (time.Date normalization).
func NextOccurrence(birth, today time.Time) time.Time {
	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	candidate := time.Date(y, birth.Month(), birth.Day(), 0, 0, 0, 0, today.Location())
	if candidate.Before(midnight) {
		candidate = time.Date(y+1, birth.Month(), birth.Day(), 0, 0, 0, 0, today.Location())
	}
	return candidate
}

// TimeUntil decomposes the duration from now until the next occurrence
// at local midnight into days, hours, minutes and seconds. On the
// birthday itself midnight has already passed, so the total clamps to
// zero instead of going negative.
func TimeUntil(birth, now time.Time) Countdown {
	next := NextOccurrence(birth, now)
	total := int(next.Sub(now).Seconds())
	if total < 0 {
		total = 0
	}
	return Countdown{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// IsToday reports whether the birthday is observed today, year ignored.
func IsToday(birth, today time.Time) bool {
	obs := time.Date(today.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, today.Location())
	return obs.Month() == today.Month() && obs.Day() == today.Day()
}

// DaysUntil returns the whole-day count until the next occurrence,
// ignoring time of day. Zero means the birthday is today.
func DaysUntil(birth, today time.Time) int {
	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	// Rounding absorbs the odd hour a DST transition adds or removes.
	h := NextOccurrence(birth, today).Sub(midnight).Hours()
	return int(h/24 + 0.5)
}

// FormatDate renders a date as DD.MM.YYYY for user-facing text.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d.%02d.%04d", t.Day(), int(t.Month()), t.Year())
}
