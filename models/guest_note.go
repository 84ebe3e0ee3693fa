package models

import (
	"time"

	"gorm.io/gorm"
)

// GuestNote is a CRM note a staff member left on a guest account.
type GuestNote struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	GuestID   uint           `gorm:"index;column:guest_id" json:"guest_id"`
	AuthorID  uint           `gorm:"column:author_id" json:"author_id"`
	Note      string         `gorm:"type:text" json:"note"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Guest  User `gorm:"foreignKey:GuestID;references:ID" json:"-"`
	Author User `gorm:"foreignKey:AuthorID;references:ID" json:"-"`
}
