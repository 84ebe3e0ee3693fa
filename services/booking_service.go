// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pupinn-backend/models"
	"pupinn-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking lifecycle: creation (with the per-room
// conflict guard), check-in/check-out/cancel transitions and the
// availability reads. All status writes to bookings and the sanctioned room
// side effects go through here.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// AvailableRoom annotates a room with availability for a requested stay.
type AvailableRoom struct {
	models.Room
	IsAvailable bool `json:"is_available"`
}

// RoomFinancials summarizes a room's revenue for report sanity checks.
type RoomFinancials struct {
	RoomID         uint     `json:"room_id"`
	TotalRevenue   float64  `json:"total_revenue"`
	BookingCount   int64    `json:"booking_count"`
	AverageRevenue *float64 `json:"average_revenue"`
	OccupancyRate  float64  `json:"occupancy_rate"`
}

// today is the server's calendar date, normalized by DateOnly so it
// compares against stored DATE values regardless of the zones either side
// was carried in.
func today() time.Time {
	return models.DateOnly(time.Now())
}

// countBlockingOverlaps counts bookings on roomID whose half-open interval
// overlaps [checkIn, checkOut) and whose status blocks availability.
// Runs on the given handle so the conflict guard can call it inside a
// transaction that holds the room row lock.
func countBlockingOverlaps(db *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	var n int64
	q := db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{models.BookingStatusUpcoming, models.BookingStatusCheckedIn}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}
	return n, nil
}

// CheckAvailability reports whether a room can take a booking for the given
// interval. Pure read, no side effects.
//
// Booking overlaps use half-open semantics (same-day turnover allowed).
// Room status matters in two cases only: maintenance always blocks (its
// duration is unpredictable), and an occupied room blocks same-day
// check-in. Dirty/cleaning rooms accept future bookings since housekeeping
// finishes before the stay starts.
func (s *BookingService) CheckAvailability(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRoomNotFound
		}
		return false, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}

	if room.Status == models.RoomStatusMaintenance {
		return false, nil
	}
	if models.DateOnly(checkIn).Equal(today()) && room.Status == models.RoomStatusOccupied {
		return false, nil
	}

	n, err := countBlockingOverlaps(s.DB, roomID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// AvailableRooms lists rooms annotated with availability for the stay.
// onlyAvailable filters the annotated set down to bookable rooms (the guest
// portal mode); staff tooling wants the full annotated list for greying out
// unavailable options.
func (s *BookingService) AvailableRooms(checkIn, checkOut time.Time, roomType string, onlyAvailable bool) ([]AvailableRoom, error) {
	q := s.DB.Model(&models.Room{})
	if roomType != "" {
		q = q.Where("type = ?", roomType)
	}
	var rooms []models.Room
	if err := q.Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	out := make([]AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		// Only rooms currently marked available are offered for booking.
		avail := false
		if room.Status == models.RoomStatusAvailable {
			n, err := countBlockingOverlaps(s.DB, room.ID, checkIn, checkOut, 0)
			if err != nil {
				return nil, err
			}
			avail = n == 0
		}
		if onlyAvailable && !avail {
			continue
		}
		out = append(out, AvailableRoom{Room: room, IsAvailable: avail})
	}
	return out, nil
}

func (s *BookingService) referenceExists(db *gorm.DB) func(string) (bool, error) {
	return func(ref string) (bool, error) {
		var n int64
		if err := db.Model(&models.Booking{}).Where("reference = ?", ref).Count(&n).Error; err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

// CreateBooking is the single entry point for reservation creation, for
// both the staff and guest paths. The overlap invariant is enforced by
// re-checking availability inside a transaction that holds a FOR UPDATE
// lock on the room row: two concurrent creates on the same room serialize
// on that lock, so the later one sees the earlier insert and fails with
// ErrRoomUnavailable. No automatic retry — callers re-search and decide.
func (s *BookingService) CreateBooking(
	guestName string,
	roomID uint,
	checkIn, checkOut time.Time,
	price *float64,
	createdByUserID *uint,
	creationSource string,
) (*models.Booking, error) {

	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, fmt.Errorf("%w: guest name is required", ErrValidation)
	}
	if len(guestName) > 100 {
		return nil, fmt.Errorf("%w: guest name must be 100 characters or less", ErrValidation)
	}
	if err := utils.ValidateStayDates(checkIn, checkOut, today()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if creationSource != models.CreationSourceStaff && creationSource != models.CreationSourceGuest {
		return nil, fmt.Errorf("%w: unknown creation source %q", ErrValidation, creationSource)
	}

	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to lock room %d: %w", roomID, err)
		}

		if room.Status == models.RoomStatusMaintenance {
			return fmt.Errorf("%w: room %s is under maintenance", ErrRoomUnavailable, room.Number)
		}
		if models.DateOnly(checkIn).Equal(today()) && room.Status == models.RoomStatusOccupied {
			return fmt.Errorf("%w: room %s is occupied today", ErrRoomUnavailable, room.Number)
		}

		// Commit-time re-validation, inside the room lock.
		n, err := countBlockingOverlaps(tx, roomID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: room %s is not available for the selected dates", ErrRoomUnavailable, room.Number)
		}

		ref, err := utils.GenerateBookingReference(time.Now(), s.referenceExists(tx))
		if err != nil {
			return fmt.Errorf("failed to generate reference: %w", err)
		}

		nights := int(checkOut.Sub(checkIn).Hours() / 24)
		if nights < 1 {
			nights = 1
		}
		bookingPrice := room.Price * float64(nights)
		if price != nil {
			bookingPrice = *price
		}

		booking = models.Booking{
			Reference:       ref,
			GuestName:       guestName,
			RoomID:          roomID,
			CheckInDate:     models.DateOnly(checkIn),
			CheckOutDate:    models.DateOnly(checkOut),
			Status:          models.BookingStatusUpcoming,
			Price:           bookingPrice,
			CreatedByUserID: createdByUserID,
			CreationSource:  creationSource,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &booking, nil
}

// GetBookingByID loads a booking with its room.
func (s *BookingService) GetBookingByID(bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.Preload("Room").First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &bk, nil
}

// GetBookingByReference loads a booking by its human-readable reference.
func (s *BookingService) GetBookingByReference(reference string) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.Preload("Room").Where("reference = ?", reference).First(&bk).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &bk, nil
}

// ListBookings returns bookings for the staff dashboard, optionally
// filtered by persisted status and/or a guest-name substring.
func (s *BookingService) ListBookings(status, guestName string) ([]models.Booking, error) {
	q := s.DB.Preload("Room").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if guestName != "" {
		q = q.Where("LOWER(guest_name) LIKE ?", "%"+strings.ToLower(guestName)+"%")
	}
	var list []models.Booking
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}

// ListBookingsByUser returns a guest's own bookings, newest stay first.
func (s *BookingService) ListBookingsByUser(userID uint, status string) ([]models.Booking, error) {
	q := s.DB.Preload("Room").
		Where("created_by_user_id = ?", userID).
		Order("check_in_date DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.Booking
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}

// GetGuestBooking loads a booking only if the guest owns it. A miss and a
// foreign booking look identical to the caller.
func (s *BookingService) GetGuestBooking(bookingID, userID uint) (*models.Booking, error) {
	bk, err := s.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	if bk.CreatedByUserID == nil || *bk.CreatedByUserID != userID {
		return nil, ErrBookingNotFound
	}
	return bk, nil
}

// CheckIn transitions upcoming -> checked_in and marks the room occupied in
// the same transaction. If the check-in date is still in the future the
// caller must confirm an early check-in, in which case the stay is pulled
// forward to today and availability is re-validated for the longer interval.
func (s *BookingService) CheckIn(bookingID uint, confirmEarly bool) (*models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.Status != models.BookingStatusUpcoming {
			return fmt.Errorf("%w: cannot check in booking with status %s", ErrIllegalTransition, booking.Status)
		}

		now := today()
		checkInDate := models.DateOnly(booking.CheckInDate)
		early := checkInDate.After(now)
		if early && !confirmEarly {
			return fmt.Errorf("%w: check-in date is %s", ErrEarlyCheckInRequired, checkInDate.Format(utils.DateLayout))
		}

		actualCheckIn := checkInDate
		if early {
			actualCheckIn = now
			// The stay now starts today; make sure no other booking holds
			// any night of the widened interval.
			n, err := countBlockingOverlaps(tx, booking.RoomID, actualCheckIn, booking.CheckOutDate, booking.ID)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w: room is not available for early check-in on %s", ErrRoomUnavailable, actualCheckIn.Format(utils.DateLayout))
			}
		}

		var room models.Room
		if err := tx.First(&room, booking.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.Status == models.RoomStatusMaintenance {
			return fmt.Errorf("%w: room %s is under maintenance", ErrRoomUnavailable, room.Number)
		}
		if room.Status == models.RoomStatusOccupied {
			// Previous guest may still be in the room past their date.
			var active int64
			if err := tx.Model(&models.Booking{}).
				Where("room_id = ? AND id <> ? AND status = ?", booking.RoomID, booking.ID, models.BookingStatusCheckedIn).
				Count(&active).Error; err != nil {
				return err
			}
			if active > 0 {
				return fmt.Errorf("%w: room %s is still occupied by another guest", ErrRoomUnavailable, room.Number)
			}
		}

		updates := map[string]interface{}{"status": models.BookingStatusCheckedIn}
		if early {
			updates["check_in_date"] = actualCheckIn
		}
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, booking.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}

		// Sanctioned cross-component side effect, same atomic unit as the
		// booking transition that licenses it.
		if err := tx.Model(&models.Room{}).
			Where("id = ?", booking.RoomID).
			Update("status", models.RoomStatusOccupied).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetBookingByID(bookingID)
}

// CheckOut transitions checked_in -> checked_out, clamps the check-out date
// to the actual stay and reprices it, then hands the room to housekeeping
// (status dirty — rooms must be cleaned before they can be sold again).
// A second check-out reports ErrAlreadyCheckedOut so the UI can stay calm.
func (s *BookingService) CheckOut(bookingID uint) (*models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.Status == models.BookingStatusCheckedOut {
			return ErrAlreadyCheckedOut
		}
		if !models.BookingStatusCanTransition(booking.Status, models.BookingStatusCheckedOut) {
			return fmt.Errorf("%w: cannot check out booking with status %s", ErrIllegalTransition, booking.Status)
		}

		var room models.Room
		if err := tx.First(&room, booking.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		// Early check-outs are permitted unconditionally; the stored
		// check-out date and price reflect the nights actually stayed.
		// check_out_date > check_in_date must keep holding, so a same-day
		// departure is billed as one night.
		now := today()
		minCheckOut := models.DateOnly(booking.CheckInDate).AddDate(0, 0, 1)
		actualCheckOut := now
		if actualCheckOut.Before(minCheckOut) {
			actualCheckOut = minCheckOut
		}
		nights := int(actualCheckOut.Sub(models.DateOnly(booking.CheckInDate)).Hours() / 24)
		if nights < 1 {
			nights = 1
		}

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, booking.Status).
			Updates(map[string]interface{}{
				"status":         models.BookingStatusCheckedOut,
				"check_out_date": actualCheckOut,
				"price":          room.Price * float64(nights),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", booking.RoomID).
			Update("status", models.RoomStatusDirty).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetBookingByID(bookingID)
}

// Cancel transitions upcoming -> cancelled. The room is untouched: a
// cancelled booking never held the room. Cancelling anything but an
// upcoming booking is a guard violation, never a silent no-op.
func (s *BookingService) Cancel(bookingID uint) (*models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.Status != models.BookingStatusUpcoming {
			return fmt.Errorf("%w: only upcoming bookings can be cancelled (status %s)", ErrIllegalTransition, booking.Status)
		}

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, models.BookingStatusUpcoming).
			Update("status", models.BookingStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetBookingByID(bookingID)
}

// CancelGuestBooking cancels a booking on behalf of the guest who made it.
func (s *BookingService) CancelGuestBooking(bookingID, userID uint) (*models.Booking, error) {
	if _, err := s.GetGuestBooking(bookingID, userID); err != nil {
		return nil, err
	}
	return s.Cancel(bookingID)
}

// CalculateRoomFinancials sums committed revenue for one room over an
// optional date window. Occupancy counts booked nights inside the window
// against the window length.
func (s *BookingService) CalculateRoomFinancials(roomID uint, start, end *time.Time) (*RoomFinancials, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	q := s.DB.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", models.BookingStatusCancelled)
	if start != nil {
		q = q.Where("check_out_date > ?", *start)
	}
	if end != nil {
		q = q.Where("check_in_date < ?", *end)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	out := &RoomFinancials{RoomID: roomID, BookingCount: int64(len(bookings))}
	bookedNights := 0
	for _, b := range bookings {
		out.TotalRevenue += b.Price

		ci, co := models.DateOnly(b.CheckInDate), models.DateOnly(b.CheckOutDate)
		if start != nil && ci.Before(models.DateOnly(*start)) {
			ci = models.DateOnly(*start)
		}
		if end != nil && co.After(models.DateOnly(*end)) {
			co = models.DateOnly(*end)
		}
		if co.After(ci) {
			bookedNights += int(co.Sub(ci).Hours() / 24)
		}
	}
	if out.BookingCount > 0 {
		avg := out.TotalRevenue / float64(out.BookingCount)
		out.AverageRevenue = &avg
	}
	if start != nil && end != nil && end.After(*start) {
		windowDays := int(models.DateOnly(*end).Sub(models.DateOnly(*start)).Hours() / 24)
		if windowDays > 0 {
			out.OccupancyRate = float64(bookedNights) / float64(windowDays)
		}
	}
	return out, nil
}
