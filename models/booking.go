package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. Only these four are persisted; "overstay" is a
// display-time projection, see DisplayStatus.
const (
	BookingStatusUpcoming   = "upcoming"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

// Derived, never stored.
const BookingStatusOverstay = "overstay"

// Where a booking came from.
const (
	CreationSourceStaff = "staff"
	CreationSourceGuest = "guest"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Reference string `gorm:"column:reference;uniqueIndex;size:64" json:"reference"`
	GuestName string `gorm:"column:guest_name;size:100" json:"guest_name"`

	RoomID       uint      `gorm:"column:room_id;index" json:"room_id"`
	CheckInDate  time.Time `gorm:"column:check_in_date;type:date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date;type:date" json:"check_out_date"`

	Status string  `gorm:"column:status;size:32;default:upcoming" json:"status"`
	Price  float64 `gorm:"column:price" json:"price"`

	// nil for staff walk-in bookings
	CreatedByUserID *uint  `gorm:"column:created_by_user_id;index" json:"created_by_user_id,omitempty"`
	CreationSource  string `gorm:"column:creation_source;size:16;default:staff" json:"creation_source"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// BookingStatusCanTransition is the whole persisted state machine:
// upcoming -> checked_in | cancelled, checked_in -> checked_out.
// checked_out and cancelled are terminal. Same-status is a no-op.
func BookingStatusCanTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case BookingStatusUpcoming:
		return to == BookingStatusCheckedIn || to == BookingStatusCancelled
	case BookingStatusCheckedIn:
		return to == BookingStatusCheckedOut
	}
	return false
}

// BookingStatusTerminal reports whether no transition may leave the status.
func BookingStatusTerminal(s string) bool {
	return s == BookingStatusCheckedOut || s == BookingStatusCancelled
}

// BookingStatusBlocksAvailability reports whether a booking in this status
// makes its room-date interval unavailable to others.
func BookingStatusBlocksAvailability(s string) bool {
	return s == BookingStatusUpcoming || s == BookingStatusCheckedIn
}

// Nights is the stay length in whole days under half-open semantics.
func (b *Booking) Nights() int {
	return int(DateOnly(b.CheckOutDate).Sub(DateOnly(b.CheckInDate)).Hours() / 24)
}

// IsOverstay reports whether the guest is still checked in past the
// check-out date. Computed at read time so no background job has to walk
// bookings flipping a fifth status.
func (b *Booking) IsOverstay(today time.Time) bool {
	return b.Status == BookingStatusCheckedIn && DateOnly(today).After(DateOnly(b.CheckOutDate))
}

// DisplayStatus is the status the front desk sees: the persisted status,
// except a checked-in booking past its check-out date shows as overstay.
func (b *Booking) DisplayStatus(today time.Time) string {
	if b.IsOverstay(today) {
		return BookingStatusOverstay
	}
	return b.Status
}

// IntervalsOverlap implements the half-open date interval rule: [a,b) and
// [c,d) share at least one night iff a < d and c < b. A check-out on day X
// and a check-in on day X do not overlap (same-day turnover).
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return DateOnly(aStart).Before(DateOnly(bEnd)) && DateOnly(bStart).Before(DateOnly(aEnd))
}

// DateOnly reduces t to its calendar date as UTC midnight. The driver hands
// DATE columns back as midnight in the connection's loc while clocks may run
// in another zone; normalizing both sides onto the (year, month, day) triple
// keeps the comparisons calendar-based instead of instant-based.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
