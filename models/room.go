package models

import (
	"gorm.io/gorm"
)

// Room types offered by the hotel.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeSuite  = "suite"
)

// Room statuses. Status is owned by housekeeping/admin except for the two
// booking side effects (check-in -> occupied, check-out -> dirty).
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusDirty       = "dirty"
	RoomStatusCleaning    = "cleaning"
)

type Room struct {
	gorm.Model

	Number string  `json:"number" gorm:"column:number;uniqueIndex;type:varchar(50)"`
	Type   string  `json:"type" gorm:"column:type;size:32"`
	Status string  `json:"status" gorm:"column:status;size:32;default:available"`
	Price  float64 `json:"price" gorm:"column:price"`
}

// ValidRoomType reports whether t is one of the offered room types.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}

// ValidRoomStatus reports whether s is a known room status.
func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance,
		RoomStatusDirty, RoomStatusCleaning:
		return true
	}
	return false
}

// DefaultPriceForType returns the default nightly price (VND) for a room type.
func DefaultPriceForType(roomType string) float64 {
	switch roomType {
	case RoomTypeSingle:
		return 1000000
	case RoomTypeDouble:
		return 1500000
	case RoomTypeSuite:
		return 2500000
	}
	return 0
}

// RoomStatusCanTransition validates a room status change. The housekeeping
// cycle after check-out is dirty -> cleaning -> available; maintenance can
// only be entered from available and always returns to available.
func RoomStatusCanTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case RoomStatusAvailable:
		return to == RoomStatusOccupied || to == RoomStatusMaintenance
	case RoomStatusOccupied:
		// dirty is the normal check-out outcome; available kept for
		// admin corrections on rooms that never needed cleaning
		return to == RoomStatusDirty || to == RoomStatusAvailable
	case RoomStatusDirty:
		return to == RoomStatusCleaning || to == RoomStatusAvailable
	case RoomStatusCleaning:
		return to == RoomStatusAvailable
	case RoomStatusMaintenance:
		return to == RoomStatusAvailable
	}
	return false
}

// RoomStatusAllowedForCleaner restricts what housekeeping may set: cleaners
// work the dirty -> cleaning -> available cycle and nothing else.
func RoomStatusAllowedForCleaner(s string) bool {
	switch s {
	case RoomStatusDirty, RoomStatusCleaning, RoomStatusAvailable:
		return true
	}
	return false
}
