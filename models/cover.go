package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cover struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecordID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"record_id"`
	Record      Record    `gorm:"constraint:OnDelete:CASCADE;" json:"record,omitempty"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (cv *Cover) BeforeCreate(tx *gorm.DB) error {
	if cv.ID == uuid.Nil {
		cv.ID = uuid.New()
	}
	return nil
}
