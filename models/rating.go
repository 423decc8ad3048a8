package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating holds one vote per (user, record); the composite unique index is
// what the upsert's ON CONFLICT clause targets.
type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_record" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	RecordID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_record" json:"record_id"`
	Record    Record    `gorm:"constraint:OnDelete:CASCADE;" json:"record,omitempty"`
	Value     int       `gorm:"not null;check:value >= 1 AND value <= 5" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (rt *Rating) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	return nil
}
