package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-09-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "01-09-2026", "2026/09/01", "2026-13-01", "tomorrow"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrBadDateFormat) {
			t.Errorf("ParseDate(%q) err = %v, want ErrBadDateFormat", bad, err)
		}
	}
}

func TestParseStayDates(t *testing.T) {
	ci, co, err := ParseStayDates("2026-09-01", "2026-09-04")
	if err != nil {
		t.Fatalf("ParseStayDates: %v", err)
	}
	if !co.After(ci) {
		t.Errorf("check-out %v not after check-in %v", co, ci)
	}

	if _, _, err := ParseStayDates("2026-09-04", "2026-09-01"); !errors.Is(err, ErrCheckOutNotLater) {
		t.Errorf("reversed dates err = %v, want ErrCheckOutNotLater", err)
	}
	// zero-night stays are rejected too
	if _, _, err := ParseStayDates("2026-09-01", "2026-09-01"); !errors.Is(err, ErrCheckOutNotLater) {
		t.Errorf("same-day err = %v, want ErrCheckOutNotLater", err)
	}
	if _, _, err := ParseStayDates("bogus", "2026-09-01"); !errors.Is(err, ErrBadDateFormat) {
		t.Errorf("bad check-in err = %v, want ErrBadDateFormat", err)
	}
}

func TestValidateStayDates(t *testing.T) {
	today := time.Date(2026, 9, 1, 13, 30, 0, 0, time.UTC)
	d := func(day int) time.Time { return time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC) }

	if err := ValidateStayDates(d(1), d(3), today); err != nil {
		t.Errorf("check-in today: err = %v, want nil", err)
	}
	if err := ValidateStayDates(d(2), d(5), today); err != nil {
		t.Errorf("future stay: err = %v, want nil", err)
	}
	if err := ValidateStayDates(d(3), d(2), today); !errors.Is(err, ErrCheckOutNotLater) {
		t.Errorf("reversed: err = %v, want ErrCheckOutNotLater", err)
	}
	if err := ValidateStayDates(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), d(3), today); !errors.Is(err, ErrCheckInPast) {
		t.Errorf("past check-in: err = %v, want ErrCheckInPast", err)
	}
}
