package services

import (
	"errors"
	"fmt"
	"strings"

	"pupinn-backend/models"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// RoomService owns room inventory and room.status outside the two booking
// side effects (check-in/check-out, which run in BookingService).
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// isDuplicateKeyErr unwraps the MySQL driver error for ER_DUP_ENTRY.
func isDuplicateKeyErr(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	// fallback for drivers that only surface the message
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

// CreateRoom adds a room to inventory. Price defaults by type when not
// given. Room numbers are unique; the DB constraint is the source of truth
// and a violation maps to ErrDuplicateRoom.
func (s *RoomService) CreateRoom(number, roomType string, price *float64) (*models.Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("%w: room number is required", ErrValidation)
	}
	if !models.ValidRoomType(roomType) {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrValidation, roomType)
	}

	p := models.DefaultPriceForType(roomType)
	if price != nil {
		if *price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		p = *price
	}

	room := models.Room{
		Number: number,
		Type:   roomType,
		Status: models.RoomStatusAvailable,
		Price:  p,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, fmt.Errorf("%w: room number %s already exists", ErrDuplicateRoom, number)
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) GetRoomByID(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) GetRoomByNumber(number string) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Where("number = ?", number).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	return &room, nil
}

// ListRooms returns rooms optionally filtered by status and/or type.
func (s *RoomService) ListRooms(status, roomType string) ([]models.Room, error) {
	q := s.DB.Order("number ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if roomType != "" {
		q = q.Where("type = ?", roomType)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// UpdateRoom changes type, price and/or status with transition validation.
// Admins may force any room to dirty (re-clean after an inspection); all
// other status changes follow the transition table.
func (s *RoomService) UpdateRoom(roomID uint, roomType *string, price *float64, status *string) (*models.Room, error) {
	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if roomType != nil {
		if !models.ValidRoomType(*roomType) {
			return nil, fmt.Errorf("%w: unknown room type %q", ErrValidation, *roomType)
		}
		updates["type"] = *roomType
	}
	if price != nil {
		if *price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		updates["price"] = *price
	}
	if status != nil {
		if !models.ValidRoomStatus(*status) {
			return nil, fmt.Errorf("%w: unknown room status %q", ErrValidation, *status)
		}
		if *status != models.RoomStatusDirty && !models.RoomStatusCanTransition(room.Status, *status) {
			return nil, fmt.Errorf("%w: cannot transition room from %s to %s", ErrIllegalTransition, room.Status, *status)
		}
		updates["status"] = *status
	}
	if len(updates) == 0 {
		return room, nil
	}

	if err := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return s.GetRoomByID(roomID)
}

// UpdateRoomStatus is the housekeeping path: a status-only change with an
// optimistic guard so two cleaners racing on the same room do not clobber
// each other.
func (s *RoomService) UpdateRoomStatus(roomID uint, status string) (*models.Room, error) {
	if !models.ValidRoomStatus(status) {
		return nil, fmt.Errorf("%w: unknown room status %q", ErrValidation, status)
	}
	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}
	if !models.RoomStatusCanTransition(room.Status, status) {
		return nil, fmt.Errorf("%w: cannot transition room from %s to %s", ErrIllegalTransition, room.Status, status)
	}

	res := s.DB.Model(&models.Room{}).
		Where("id = ? AND status = ?", roomID, room.Status).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update room status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: room status changed concurrently", ErrIllegalTransition)
	}
	return s.GetRoomByID(roomID)
}
