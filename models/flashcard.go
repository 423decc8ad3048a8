package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flashcard is one question/answer/hint unit. FlashcardNum starts at 1 and is
// unique within its record; the composite index backs the numbering so a
// racing create fails loudly instead of producing a duplicate.
type Flashcard struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecordID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_record_flashcard_num" json:"record_id"`
	Record       Record    `gorm:"constraint:OnDelete:CASCADE;" json:"record,omitempty"`
	FlashcardNum int       `gorm:"not null;uniqueIndex:idx_record_flashcard_num" json:"flashcard_num"`
	Question     string    `gorm:"type:text;not null" json:"question"`
	Answer       string    `gorm:"type:text;not null" json:"answer"`
	Hint         *string   `gorm:"type:text" json:"hint"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *Flashcard) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
