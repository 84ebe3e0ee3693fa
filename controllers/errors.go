package controllers

import (
	"errors"
	"log"
	"net/http"

	"pupinn-backend/services"
	"pupinn-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinel errors onto the structured
// error body. EARLY_CHECKIN_REQUIRED is deliberately not a 4xx dead end:
// 409 plus its own code lets the UI offer a "confirm early check-in"
// action instead of an error toast, and ALREADY_CHECKED_OUT gets a soft
// notification for the same reason.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNoteNotFound):
		utils.JSONError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "ROOM_UNAVAILABLE", err.Error())
	case errors.Is(err, services.ErrDuplicateRoom):
		utils.JSONError(c, http.StatusConflict, "DUPLICATE_ROOM", err.Error())
	case errors.Is(err, services.ErrEarlyCheckInRequired):
		utils.JSONError(c, http.StatusConflict, "EARLY_CHECKIN_REQUIRED", err.Error())
	case errors.Is(err, services.ErrAlreadyCheckedOut):
		utils.JSONError(c, http.StatusConflict, "ALREADY_CHECKED_OUT", err.Error())
	case errors.Is(err, services.ErrIllegalTransition):
		utils.JSONError(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", err.Error())
	case errors.Is(err, services.ErrStatusChanged):
		utils.JSONError(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
	}
}
