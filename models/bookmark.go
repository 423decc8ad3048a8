package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmark marks a cover for a user. One row per (user, cover).
type Bookmark struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_cover" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	CoverID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_cover" json:"cover_id"`
	Cover     Cover     `gorm:"constraint:OnDelete:CASCADE;" json:"cover,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
