package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecordStatus string

const (
	StatusPrivate RecordStatus = "Private"
	StatusPublic  RecordStatus = "Public"
)

// Record is a user-owned study set: one Cover plus its Flashcards.
type Record struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User         `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Category  string       `gorm:"size:100;not null" json:"category"`
	Status    RecordStatus `gorm:"type:varchar(10);not null" json:"status"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Cover      *Cover      `json:"cover,omitempty"`
	Flashcards []Flashcard `json:"flashcards,omitempty"`
	Ratings    []Rating    `json:"ratings,omitempty"`
}

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
