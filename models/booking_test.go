package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingStatusCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{BookingStatusUpcoming, BookingStatusCheckedIn, true},
		{BookingStatusUpcoming, BookingStatusCancelled, true},
		{BookingStatusUpcoming, BookingStatusCheckedOut, false},
		{BookingStatusCheckedIn, BookingStatusCheckedOut, true},
		{BookingStatusCheckedIn, BookingStatusCancelled, false},
		{BookingStatusCheckedIn, BookingStatusUpcoming, false},
		{BookingStatusCheckedOut, BookingStatusCheckedIn, false},
		{BookingStatusCheckedOut, BookingStatusUpcoming, false},
		{BookingStatusCancelled, BookingStatusUpcoming, false},
		{BookingStatusCancelled, BookingStatusCheckedIn, false},
		// same-status is a no-op, not an error
		{BookingStatusUpcoming, BookingStatusUpcoming, true},
		{BookingStatusCheckedOut, BookingStatusCheckedOut, true},
	}
	for _, c := range cases {
		if got := BookingStatusCanTransition(c.from, c.to); got != c.want {
			t.Errorf("BookingStatusCanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	for _, s := range []string{BookingStatusCheckedOut, BookingStatusCancelled} {
		if !BookingStatusTerminal(s) {
			t.Errorf("BookingStatusTerminal(%s) = false, want true", s)
		}
	}
	for _, s := range []string{BookingStatusUpcoming, BookingStatusCheckedIn} {
		if BookingStatusTerminal(s) {
			t.Errorf("BookingStatusTerminal(%s) = true, want false", s)
		}
	}
}

func TestBookingStatusBlocksAvailability(t *testing.T) {
	cases := map[string]bool{
		BookingStatusUpcoming:   true,
		BookingStatusCheckedIn:  true,
		BookingStatusCheckedOut: false,
		BookingStatusCancelled:  false,
	}
	for s, want := range cases {
		if got := BookingStatusBlocksAvailability(s); got != want {
			t.Errorf("BookingStatusBlocksAvailability(%s) = %v, want %v", s, got, want)
		}
	}
}

func TestIntervalsOverlap(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{
			name:   "disjoint",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 3),
			bStart: date(2026, 3, 10), bEnd: date(2026, 3, 12),
			want: false,
		},
		{
			name:   "same day turnover",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 5),
			bStart: date(2026, 3, 5), bEnd: date(2026, 3, 8),
			want: false,
		},
		{
			name:   "one shared night",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 5),
			bStart: date(2026, 3, 4), bEnd: date(2026, 3, 8),
			want: true,
		},
		{
			name:   "contained",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 10),
			bStart: date(2026, 3, 3), bEnd: date(2026, 3, 5),
			want: true,
		},
		{
			name:   "identical",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 5),
			bStart: date(2026, 3, 1), bEnd: date(2026, 3, 5),
			want: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IntervalsOverlap(c.aStart, c.aEnd, c.bStart, c.bEnd); got != c.want {
				t.Errorf("IntervalsOverlap = %v, want %v", got, c.want)
			}
			// overlap is symmetric
			if got := IntervalsOverlap(c.bStart, c.bEnd, c.aStart, c.aEnd); got != c.want {
				t.Errorf("IntervalsOverlap (swapped) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestNights(t *testing.T) {
	b := Booking{CheckInDate: date(2026, 3, 1), CheckOutDate: date(2026, 3, 4)}
	if got := b.Nights(); got != 3 {
		t.Errorf("Nights() = %d, want 3", got)
	}

	one := Booking{CheckInDate: date(2026, 3, 1), CheckOutDate: date(2026, 3, 2)}
	if got := one.Nights(); got != 1 {
		t.Errorf("Nights() = %d, want 1", got)
	}

	// Dates carried in different zones still count whole calendar nights.
	east := time.FixedZone("UTC+13", 13*3600)
	mixed := Booking{
		CheckInDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, east),
		CheckOutDate: date(2026, 3, 4),
	}
	if got := mixed.Nights(); got != 3 {
		t.Errorf("Nights() across zones = %d, want 3", got)
	}
}

func TestDisplayStatusOverstay(t *testing.T) {
	b := Booking{
		Status:       BookingStatusCheckedIn,
		CheckInDate:  date(2026, 3, 1),
		CheckOutDate: date(2026, 3, 4),
	}

	if got := b.DisplayStatus(date(2026, 3, 3)); got != BookingStatusCheckedIn {
		t.Errorf("DisplayStatus mid-stay = %s, want checked_in", got)
	}
	// check-out day itself is not an overstay yet
	if got := b.DisplayStatus(date(2026, 3, 4)); got != BookingStatusCheckedIn {
		t.Errorf("DisplayStatus on check-out day = %s, want checked_in", got)
	}
	if got := b.DisplayStatus(date(2026, 3, 5)); got != BookingStatusOverstay {
		t.Errorf("DisplayStatus past check-out = %s, want overstay", got)
	}

	// only a checked-in booking can show overstay
	b.Status = BookingStatusUpcoming
	if got := b.DisplayStatus(date(2026, 3, 10)); got != BookingStatusUpcoming {
		t.Errorf("DisplayStatus for upcoming = %s, want upcoming", got)
	}
	b.Status = BookingStatusCheckedOut
	if got := b.DisplayStatus(date(2026, 3, 10)); got != BookingStatusCheckedOut {
		t.Errorf("DisplayStatus for checked_out = %s, want checked_out", got)
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, 3, 7, 18, 45, 12, 999, time.UTC)
	got := DateOnly(ts)
	if got != date(2026, 3, 7) {
		t.Errorf("DateOnly(%v) = %v", ts, got)
	}

	// Same calendar date in different zones must normalize identically.
	east := time.FixedZone("UTC+13", 13*3600)
	west := time.FixedZone("UTC-5", -5*3600)
	if got := DateOnly(time.Date(2026, 3, 7, 0, 0, 0, 0, east)); got != date(2026, 3, 7) {
		t.Errorf("DateOnly(east midnight) = %v, want %v", got, date(2026, 3, 7))
	}
	if got := DateOnly(time.Date(2026, 3, 7, 23, 59, 0, 0, west)); got != date(2026, 3, 7) {
		t.Errorf("DateOnly(west evening) = %v, want %v", got, date(2026, 3, 7))
	}
}

// Calendar-date judgments must not depend on the zone the driver or the
// clock attached to the values.
func TestDisplayStatusAcrossTimeZones(t *testing.T) {
	east := time.FixedZone("UTC+13", 13*3600)

	b := Booking{
		Status:       BookingStatusCheckedIn,
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, east),
		CheckOutDate: time.Date(2026, 3, 12, 0, 0, 0, 0, east),
	}

	// Afternoon of the check-out day, seen from a UTC clock: the instant is
	// past the stored local midnight, but the calendar date is the same.
	utcNow := time.Date(2026, 3, 12, 1, 0, 0, 0, time.UTC) // 14:00 in UTC+13
	if b.IsOverstay(utcNow) {
		t.Errorf("IsOverstay true on the check-out day (now=%v, checkout=%v)", utcNow, b.CheckOutDate)
	}
	if got := b.DisplayStatus(utcNow); got != BookingStatusCheckedIn {
		t.Errorf("DisplayStatus on check-out day = %s, want checked_in", got)
	}

	localNow := time.Date(2026, 3, 12, 14, 0, 0, 0, east)
	if b.IsOverstay(localNow) {
		t.Errorf("IsOverstay true on the check-out day with a local clock (now=%v)", localNow)
	}

	// The day after the check-out date is an overstay from either clock.
	if !b.IsOverstay(time.Date(2026, 3, 13, 1, 0, 0, 0, east)) {
		t.Error("IsOverstay false the day after check-out (local clock)")
	}
	if !b.IsOverstay(time.Date(2026, 3, 13, 1, 0, 0, 0, time.UTC)) {
		t.Error("IsOverstay false the day after check-out (UTC clock)")
	}
}

func TestIntervalsOverlapAcrossTimeZones(t *testing.T) {
	east := time.FixedZone("UTC+13", 13*3600)

	// [Mar 1, Mar 5) carried as east-midnights vs [Mar 5, Mar 8) carried as
	// UTC midnights: same-day turnover, no overlap.
	if IntervalsOverlap(
		time.Date(2026, 3, 1, 0, 0, 0, 0, east), time.Date(2026, 3, 5, 0, 0, 0, 0, east),
		date(2026, 3, 5), date(2026, 3, 8),
	) {
		t.Error("same-day turnover reported as overlap across zones")
	}

	if !IntervalsOverlap(
		time.Date(2026, 3, 1, 0, 0, 0, 0, east), time.Date(2026, 3, 5, 0, 0, 0, 0, east),
		date(2026, 3, 4), date(2026, 3, 8),
	) {
		t.Error("shared night not reported as overlap across zones")
	}
}
