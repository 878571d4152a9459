package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseBirthDate_Valid(t *testing.T) {
	got, err := ParseBirthDate("15.05.1990")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestParseBirthDate_LeapDay(t *testing.T) {
	if _, err := ParseBirthDate("29.02.1992"); err != nil {
		t.Fatalf("leap-year Feb 29 must parse: %v", err)
	}
	if _, err := ParseBirthDate("29.02.1993"); !errors.Is(err, ErrDateInvalid) {
		t.Fatalf("non-leap Feb 29 must fail with ErrDateInvalid, got %v", err)
	}
}

func TestParseBirthDate_Invalid(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"31.13.2000", ErrDateInvalid},
		{"32.01.2000", ErrDateInvalid},
		{"00.05.1990", ErrDateInvalid},
		{"15/05/1990", ErrDateFormat},
		{"15.05", ErrDateFormat},
		{"a.b.c", ErrDateFormat},
		{"", ErrDateFormat},
		{"15.05.199o", ErrDateFormat},
	}
	for _, c := range cases {
		if _, err := ParseBirthDate(c.in); !errors.Is(err, c.want) {
			t.Fatalf("%q: want %v, got %v", c.in, c.want, err)
		}
	}
}

func TestLooksLikeDate(t *testing.T) {
	if !LooksLikeDate("15.05.1990") {
		t.Fatal("15.05.1990 should look like a date")
	}
	if LooksLikeDate("hello") || LooksLikeDate("15.05") || LooksLikeDate("1.2.3.4") {
		t.Fatal("non-date shapes must not match")
	}
}
