package services

import (
	"errors"
	"fmt"
	"strings"

	"pupinn-backend/models"

	"gorm.io/gorm"
)

// GuestNoteService handles CRM notes staff leave on guest accounts.
type GuestNoteService struct {
	DB *gorm.DB
}

func NewGuestNoteService(db *gorm.DB) *GuestNoteService {
	return &GuestNoteService{DB: db}
}

func (s *GuestNoteService) CreateNote(guestID, authorID uint, note string) (*models.GuestNote, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, fmt.Errorf("%w: note text is required", ErrValidation)
	}

	var guest models.User
	if err := s.DB.First(&guest, guestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load guest: %w", err)
	}

	n := models.GuestNote{GuestID: guestID, AuthorID: authorID, Note: note}
	if err := s.DB.Create(&n).Error; err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &n, nil
}

func (s *GuestNoteService) ListNotes(guestID uint) ([]models.GuestNote, error) {
	var notes []models.GuestNote
	if err := s.DB.Where("guest_id = ?", guestID).Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *GuestNoteService) UpdateNote(noteID uint, note string) (*models.GuestNote, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, fmt.Errorf("%w: note text is required", ErrValidation)
	}

	var existing models.GuestNote
	if err := s.DB.First(&existing, noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to load note: %w", err)
	}
	if err := s.DB.Model(&existing).Update("note", note).Error; err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return &existing, nil
}

func (s *GuestNoteService) DeleteNote(noteID uint) error {
	res := s.DB.Delete(&models.GuestNote{}, noteID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete note: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
