package utils

import (
	"errors"
	"time"
)

// Calendar dates on the wire are always YYYY-MM-DD.
const DateLayout = "2006-01-02"

var (
	ErrBadDateFormat    = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrCheckOutNotLater = errors.New("check-out date must be after check-in date")
	ErrCheckInPast      = errors.New("check-in date cannot be in the past")
)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrBadDateFormat
	}
	return t, nil
}

// ParseStayDates parses and orders a check-in/check-out pair.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	co, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !co.After(ci) {
		return time.Time{}, time.Time{}, ErrCheckOutNotLater
	}
	return ci, co, nil
}

// ValidateStayDates enforces the creation-time rules: strictly ordered
// dates and a check-in no earlier than today.
func ValidateStayDates(checkIn, checkOut, today time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrCheckOutNotLater
	}
	if checkIn.Before(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())) {
		return ErrCheckInPast
	}
	return nil
}
