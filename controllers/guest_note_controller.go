// controllers/guest_note_controller.go
package controllers

import (
	"net/http"

	"pupinn-backend/services"
	"pupinn-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

type UpdateNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// GuestNoteController is the CRM note surface on guest accounts.
type GuestNoteController struct {
	NoteSvc *services.GuestNoteService
	UserSvc *services.UserService
}

func NewGuestNoteController(noteSvc *services.GuestNoteService, userSvc *services.UserService) *GuestNoteController {
	return &GuestNoteController{NoteSvc: noteSvc, UserSvc: userSvc}
}

func (ctrl *GuestNoteController) ListGuests(c *gin.Context) {
	guests, err := ctrl.UserSvc.ListGuests()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

func (ctrl *GuestNoteController) ListNotes(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	notes, err := ctrl.NoteSvc.ListNotes(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (ctrl *GuestNoteController) CreateNote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "note is required")
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}
	note, err := ctrl.NoteSvc.CreateNote(id, actor.UserID, req.Note)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (ctrl *GuestNoteController) UpdateNote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "note is required")
		return
	}
	note, err := ctrl.NoteSvc.UpdateNote(id, req.Note)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (ctrl *GuestNoteController) DeleteNote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.NoteSvc.DeleteNote(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
