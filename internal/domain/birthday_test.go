package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrence_LaterThisYear(t *testing.T) {
	birth := date(1990, time.May, 15)
	today := date(2025, time.March, 1)
	got := NextOccurrence(birth, today)
	want := date(2025, time.May, 15)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestNextOccurrence_RollsToNextYear(t *testing.T) {
	birth := date(1990, time.May, 15)
	today := date(2025, time.May, 16)
	got := NextOccurrence(birth, today)
	want := date(2026, time.May, 15)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestNextOccurrence_TodayIsNotAdvanced(t *testing.T) {
	birth := date(1990, time.May, 15)
	today := date(2025, time.May, 15)
	got := NextOccurrence(birth, today)
	if !got.Equal(today) {
		t.Fatalf("want today %v, got %v", today, got)
	}
}

func TestNextOccurrence_IgnoresTimeOfDay(t *testing.T) {
	birth := date(1990, time.May, 15)
	// Late evening on the birthday itself must still resolve to today.
	now := time.Date(2025, time.May, 15, 23, 50, 0, 0, time.UTC)
	got := NextOccurrence(birth, now)
	if !got.Equal(date(2025, time.May, 15)) {
		t.Fatalf("want 2025-05-15, got %v", got)
	}
}

func TestNextOccurrence_WithinYear(t *testing.T) {
	// The next occurrence is never more than 366 days out.
	births := []time.Time{
		date(1990, time.January, 1),
		date(1992, time.February, 29),
		date(1985, time.July, 4),
		date(2000, time.December, 31),
	}
	todays := []time.Time{
		date(2025, time.January, 1),
		date(2025, time.June, 15),
		date(2025, time.December, 31),
		date(2024, time.February, 29),
	}
	for _, b := range births {
		for _, today := range todays {
			next := NextOccurrence(b, today)
			if next.Before(today) {
				t.Fatalf("occurrence %v before today %v (birth %v)", next, today, b)
			}
			if next.Sub(today) > 366*24*time.Hour {
				t.Fatalf("occurrence %v more than 366 days after %v (birth %v)", next, today, b)
			}
		}
	}
}

func TestNextOccurrence_LeapDayObservedMarchFirst(t *testing.T) {
	birth := date(1992, time.February, 29)
	today := date(2025, time.January, 10)
	got := NextOccurrence(birth, today)
	want := date(2025, time.March, 1)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	// In a leap year the real date is used.
	today = date(2028, time.January, 10)
	got = NextOccurrence(birth, today)
	want = date(2028, time.February, 29)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestTimeUntil_Decomposition(t *testing.T) {
	birth := date(1990, time.May, 15)
	now := time.Date(2025, time.May, 12, 21, 30, 15, 0, time.UTC)
	c := TimeUntil(birth, now)

	// Midnight of May 15 is 2 days, 2 hours, 29 minutes, 45 seconds away.
	if c.Days != 2 || c.Hours != 2 || c.Minutes != 29 || c.Seconds != 45 {
		t.Fatalf("unexpected countdown: %+v", c)
	}

	total := c.Days*86400 + c.Hours*3600 + c.Minutes*60 + c.Seconds
	want := int(NextOccurrence(birth, now).Sub(now).Seconds())
	if total != want {
		t.Fatalf("decomposition does not reconstruct: got %d, want %d", total, want)
	}
}

func TestTimeUntil_UnitBounds(t *testing.T) {
	birth := date(1990, time.November, 3)
	now := time.Date(2025, time.April, 7, 13, 59, 59, 0, time.UTC)
	for i := 0; i < 100; i++ {
		c := TimeUntil(birth, now.Add(time.Duration(i)*17*time.Minute))
		if c.Hours < 0 || c.Hours > 23 || c.Minutes < 0 || c.Minutes > 59 || c.Seconds < 0 || c.Seconds > 59 {
			t.Fatalf("unit out of bounds: %+v", c)
		}
	}
}

func TestTimeUntil_ClampsOnBirthday(t *testing.T) {
	birth := date(1990, time.May, 15)
	// Afternoon of the birthday: midnight already passed.
	now := time.Date(2025, time.May, 15, 15, 0, 0, 0, time.UTC)
	c := TimeUntil(birth, now)
	if c.Days != 0 || c.Hours != 0 || c.Minutes != 0 || c.Seconds != 0 {
		t.Fatalf("want zero countdown on the birthday, got %+v", c)
	}
}

func TestIsToday_MatchesDaysUntilZero(t *testing.T) {
	births := []time.Time{
		date(1990, time.May, 15),
		date(1992, time.February, 29),
		date(2000, time.January, 1),
	}
	start := date(2025, time.January, 1)
	for _, b := range births {
		for i := 0; i < 730; i++ {
			today := start.AddDate(0, 0, i)
			if IsToday(b, today) != (DaysUntil(b, today) == 0) {
				t.Fatalf("IsToday and DaysUntil disagree for birth %v on %v", b, today)
			}
		}
	}
}

func TestDaysUntil(t *testing.T) {
	birth := date(1990, time.May, 15)
	cases := []struct {
		today time.Time
		want  int
	}{
		{date(2025, time.May, 14), 1},
		{date(2025, time.May, 15), 0},
		{date(2025, time.May, 16), 364},
	}
	for _, c := range cases {
		if got := DaysUntil(birth, c.today); got != c.want {
			t.Fatalf("DaysUntil on %v: want %d, got %d", c.today, c.want, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(date(1990, time.May, 5)); got != "05.05.1990" {
		t.Fatalf("want 05.05.1990, got %s", got)
	}
}
