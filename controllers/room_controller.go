// controllers/room_controller.go
package controllers

import (
	"net/http"

	"pupinn-backend/middleware"
	"pupinn-backend/models"
	"pupinn-backend/services"
	"pupinn-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateRoomRequest struct {
	Number string   `json:"number" binding:"required"`
	Type   string   `json:"type" binding:"required"`
	Price  *float64 `json:"price,omitempty"`
}

type UpdateRoomRequest struct {
	Type   *string  `json:"type,omitempty"`
	Price  *float64 `json:"price,omitempty"`
	Status *string  `json:"status,omitempty"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RoomController covers room inventory plus the availability search, which
// is the one room read the booking flows depend on.
type RoomController struct {
	RoomSvc    *services.RoomService
	BookingSvc *services.BookingService
}

func NewRoomController(roomSvc *services.RoomService, bookingSvc *services.BookingService) *RoomController {
	return &RoomController{RoomSvc: roomSvc, BookingSvc: bookingSvc}
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "number and type are required")
		return
	}
	room, err := ctrl.RoomSvc.CreateRoom(req.Number, req.Type, req.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (ctrl *RoomController) ListRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListRooms(c.Query("status"), c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetRoomByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload")
		return
	}
	room, err := ctrl.RoomSvc.UpdateRoom(id, req.Type, req.Price, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// AvailableRooms runs the availability search for a stay.
// ?only_available=true returns just bookable rooms (guest portal mode);
// the default annotates every room with is_available for staff screens.
func (ctrl *RoomController) AvailableRooms(c *gin.Context) {
	ci, co, err := utils.ParseStayDates(c.Query("check_in_date"), c.Query("check_out_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	roomType := c.Query("room_type")
	if roomType != "" && !models.ValidRoomType(roomType) {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown room type")
		return
	}

	rooms, err := ctrl.BookingSvc.AvailableRooms(ci, co, roomType, c.Query("only_available") == "true")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ListCleanerRooms is the housekeeping dashboard; with no filter it shows
// the dirty rooms waiting for a clean.
func (ctrl *RoomController) ListCleanerRooms(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		status = models.RoomStatusDirty
	}
	rooms, err := ctrl.RoomSvc.ListRooms(status, c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// UpdateCleanerRoomStatus lets housekeeping walk a room through
// dirty -> cleaning -> available. Anything else is forbidden for the
// cleaner role.
func (ctrl *RoomController) UpdateCleanerRoomStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "status is required")
		return
	}

	if actor, ok := middleware.GetActor(c); ok && actor.Role == models.RoleCleaner {
		if !models.RoomStatusAllowedForCleaner(req.Status) {
			utils.JSONError(c, http.StatusForbidden, "FORBIDDEN", "cleaners may only set dirty, cleaning or available")
			return
		}
	}

	room, err := ctrl.RoomSvc.UpdateRoomStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}
