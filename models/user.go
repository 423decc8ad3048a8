package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string    `gorm:"size:150;not null" json:"name"`
	Email             string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password          string    `gorm:"type:text;not null" json:"-"`
	IsVerified        bool      `gorm:"not null;default:false" json:"is_verified"`
	VerificationToken *string   `gorm:"size:64;index" json:"-"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Records   []Record   `json:"records,omitempty"`
	Bookmarks []Bookmark `json:"bookmarks,omitempty"`
	Ratings   []Rating   `json:"ratings,omitempty"`
}

// BeforeCreate assigns the ID in code so the models also run on databases
// without gen_random_uuid (sqlite in tests).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
