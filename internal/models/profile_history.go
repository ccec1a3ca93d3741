package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileHistory records one changed health profile field. Values are the
// JSON encoding of the field before and after the update.
type ProfileHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Field     string    `gorm:"size:64;not null" json:"field"`
	OldValue  string    `gorm:"type:text" json:"oldValue"`
	NewValue  string    `gorm:"type:text" json:"newValue"`
	ChangedAt time.Time `gorm:"not null" json:"changedAt"`
}

// TableName keeps the singular table name used by the migrations
func (ProfileHistory) TableName() string {
	return "profile_history"
}
