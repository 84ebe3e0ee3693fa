package services

import "errors"

// Sentinel errors returned by the services. Controllers map these to HTTP
// status codes with errors.Is; anything not listed here is a 500.
var (
	// ErrValidation covers malformed input rejected before touching storage.
	ErrValidation = errors.New("validation_error")

	ErrRoomNotFound    = errors.New("room_not_found")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrUserNotFound    = errors.New("user_not_found")
	ErrNoteNotFound    = errors.New("note_not_found")

	// ErrRoomUnavailable is the overlap-conflict outcome: the room is not
	// free for the requested interval at commit time. A business fact, not
	// a transient fault — callers decide whether to search again.
	ErrRoomUnavailable = errors.New("room_unavailable")

	// ErrDuplicateRoom means the human-facing room number is already taken.
	ErrDuplicateRoom = errors.New("duplicate_room")

	// ErrIllegalTransition is a booking or room status guard violation.
	ErrIllegalTransition = errors.New("invalid_status_transition")

	// ErrAlreadyCheckedOut is split from ErrIllegalTransition so the UI can
	// show a soft notice instead of an error toast on a double check-out.
	ErrAlreadyCheckedOut = errors.New("already_checked_out")

	// ErrEarlyCheckInRequired asks the caller to confirm an early check-in.
	// It is a request for confirmation, not a failure to log.
	ErrEarlyCheckInRequired = errors.New("early_checkin_required")

	// ErrStatusChanged means another operation moved the booking between
	// our read and our guarded update.
	ErrStatusChanged = errors.New("booking_status_changed")
)

// IsRoomUnavailable reports whether err is the overlap-conflict outcome.
// The proposal bridge keys a distinct guest-facing response off it.
func IsRoomUnavailable(err error) bool {
	return errors.Is(err, ErrRoomUnavailable)
}
