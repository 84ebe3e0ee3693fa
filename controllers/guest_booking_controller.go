// controllers/guest_booking_controller.go
package controllers

import (
	"net/http"
	"time"

	"pupinn-backend/middleware"
	"pupinn-backend/models"
	"pupinn-backend/services"
	"pupinn-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateGuestBookingRequest struct {
	RoomID       uint   `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

type ResolveProposalRequest struct {
	Payload string `json:"payload" binding:"required"`
}

type AcceptProposalRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

// GuestBookingController is the guest self-service portal: a guest's own
// bookings plus the chat proposal bridge.
type GuestBookingController struct {
	BookingSvc *services.BookingService
}

func NewGuestBookingController(svc *services.BookingService) *GuestBookingController {
	return &GuestBookingController{BookingSvc: svc}
}

func requireActor(c *gin.Context) (middleware.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return middleware.Actor{}, false
	}
	return actor, true
}

// CreateBooking books a room for the authenticated guest.
func (ctrl *GuestBookingController) CreateBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req CreateGuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_id, check_in_date and check_out_date are required")
		return
	}
	ci, co, err := utils.ParseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	uid := actor.UserID
	booking, err := ctrl.BookingSvc.CreateBooking(
		actor.FullName, req.RoomID, ci, co, nil, &uid, models.CreationSourceGuest)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(booking, time.Now()))
}

// ListBookings returns the authenticated guest's own bookings.
func (ctrl *GuestBookingController) ListBookings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	list, err := ctrl.BookingSvc.ListBookingsByUser(actor.UserID, c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewsOf(list, time.Now()))
}

func (ctrl *GuestBookingController) GetBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetGuestBooking(id, actor.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(booking, time.Now()))
}

func (ctrl *GuestBookingController) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.CancelGuestBooking(id, actor.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(booking, time.Now()))
}

// ResolveProposal parses a chat payload and matches it against the guest's
// booking list. A payload with no parseable proposal is not an error — the
// chat UI just renders the message as plain text.
func (ctrl *GuestBookingController) ResolveProposal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req ResolveProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "payload is required")
		return
	}

	proposal := services.ParseProposal(req.Payload)
	if proposal == nil {
		c.JSON(http.StatusOK, gin.H{"proposal": nil})
		return
	}

	bookings, err := ctrl.BookingSvc.ListBookingsByUser(actor.UserID, "")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"proposal": proposal,
		"status":   services.ResolveProposalStatus(proposal, bookings),
	})
}

// AcceptProposal turns a chat proposal into a real booking. On an overlap
// conflict the guest gets ROOM_NO_LONGER_AVAILABLE — a prompt to search
// again, not a generic failure.
func (ctrl *GuestBookingController) AcceptProposal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req AcceptProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "payload is required")
		return
	}

	proposal := services.ParseProposal(req.Payload)
	if proposal == nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "payload does not contain a valid booking proposal")
		return
	}

	booking, err := ctrl.BookingSvc.AcceptProposal(proposal, actor.UserID, actor.FullName)
	if err != nil {
		if services.IsRoomUnavailable(err) {
			utils.JSONError(c, http.StatusConflict, "ROOM_NO_LONGER_AVAILABLE", "the proposed room is no longer available for those dates")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(booking, time.Now()))
}
