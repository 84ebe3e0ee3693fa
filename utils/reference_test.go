package utils

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

var referencePattern = regexp.MustCompile(`^BK-20260901-[A-Z0-9]{4}$`)

func TestGenerateBookingReferenceFormat(t *testing.T) {
	now := time.Date(2026, 9, 1, 23, 50, 0, 0, time.UTC)

	ref, err := GenerateBookingReference(now, func(string) (bool, error) { return false, nil })
	if err != nil {
		t.Fatalf("GenerateBookingReference: %v", err)
	}
	if !referencePattern.MatchString(ref) {
		t.Errorf("reference %q does not match BK-YYYYMMDD-XXXX", ref)
	}
}

func TestGenerateBookingReferenceRetriesOnCollision(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	calls := 0
	ref, err := GenerateBookingReference(now, func(string) (bool, error) {
		calls++
		return calls < 3, nil // first two candidates taken
	})
	if err != nil {
		t.Fatalf("GenerateBookingReference: %v", err)
	}
	if calls != 3 {
		t.Errorf("exists called %d times, want 3", calls)
	}
	if !referencePattern.MatchString(ref) {
		t.Errorf("reference %q does not match expected format", ref)
	}
}

func TestGenerateBookingReferenceGivesUp(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	calls := 0
	_, err := GenerateBookingReference(now, func(string) (bool, error) {
		calls++
		return true, nil // every candidate collides
	})
	if err == nil {
		t.Fatal("expected error when every candidate collides")
	}
	if calls != 10 {
		t.Errorf("exists called %d times, want 10", calls)
	}
}

func TestGenerateBookingReferencePropagatesLookupError(t *testing.T) {
	boom := errors.New("db down")
	_, err := GenerateBookingReference(time.Now(), func(string) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want lookup error", err)
	}
}
