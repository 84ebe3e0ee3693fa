// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"strconv"
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

type CreateBookingRequest struct {
	GuestName    string   `json:"guest_name" binding:"required"`
	RoomID       uint     `json:"room_id" binding:"required"`
	CheckInDate  string   `json:"check_in_date" binding:"required"`
	CheckOutDate string   `json:"check_out_date" binding:"required"`
	Price        *float64 `json:"price,omitempty"`
}

type CheckInRequest struct {
	ConfirmEarly bool `json:"confirm_early"`
}

// bookingView re-serializes a booking with its display status so the
// overstay projection is computed in exactly one place.
type bookingView struct {
	models.Booking
	DisplayStatus string `json:"display_status"`
}

func viewOf(b *models.Booking, now time.Time) bookingView {
	return bookingView{Booking: *b, DisplayStatus: b.DisplayStatus(now)}
}

func viewsOf(list []models.Booking, now time.Time) []bookingView {
	out := make([]bookingView, 0, len(list))
	for i := range list {
		out = append(out, viewOf(&list[i], now))
	}
	return out
}

// ---------------------------
// Controller
// ---------------------------

// BookingController is the staff-facing booking surface.
type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
		return 0, false
	}
	return uint(id), true
}

// CreateBooking handles a staff walk-in reservation.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "guest_name, room_id, check_in_date and check_out_date are required")
		return
	}

	ci, co, err := utils.ParseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var createdBy *uint
	if actor, ok := middleware.GetActor(c); ok {
		uid := actor.UserID
		createdBy = &uid
	}

	booking, err := ctrl.BookingSvc.CreateBooking(
		req.GuestName, req.RoomID, ci, co, req.Price, createdBy, models.CreationSourceStaff)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(booking, time.Now()))
}

// ListBookings returns bookings with status filter, guest name search and
// the overstay projection in display_status.
func (ctrl *BookingController) ListBookings(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != models.BookingStatusUpcoming &&
		status != models.BookingStatusCheckedIn &&
		status != models.BookingStatusCheckedOut &&
		status != models.BookingStatusCancelled {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown booking status")
		return
	}

	list, err := ctrl.BookingSvc.ListBookings(status, c.Query("guest_name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewsOf(list, time.Now()))
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBookingByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(booking, time.Now()))
}

func (ctrl *BookingController) GetBookingByReference(c *gin.Context) {
	ref := c.Param("reference")
	booking, err := ctrl.BookingSvc.GetBookingByReference(ref)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(booking, time.Now()))
}

// CheckIn performs the front-desk check-in. An early check-in comes back
// as EARLY_CHECKIN_REQUIRED until the staff confirms with confirm_early.
func (ctrl *BookingController) CheckIn(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CheckInRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload")
			return
		}
	}

	booking, err := ctrl.BookingSvc.CheckIn(id, req.ConfirmEarly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(booking, time.Now()))
}

func (ctrl *BookingController) CheckOut(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.CheckOut(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(booking, time.Now()))
}

func (ctrl *BookingController) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.Cancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(booking, time.Now()))
}

// RoomFinancials exposes the per-room revenue summary used by the report
// screens to cross-check their aggregates.
func (ctrl *BookingController) RoomFinancials(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var start, end *time.Time
	if s := c.Query("start_date"); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		start = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		end = &t
	}

	fin, err := ctrl.BookingSvc.CalculateRoomFinancials(id, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fin)
}
