package models

import (
	"time"
)

// DocumentRecord is the database row holding a user's saved document.
// The snapshot itself is stored as a JSON blob; persistence is a plain
// key-value contract keyed by user id, last write wins.
type DocumentRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `gorm:"uniqueIndex;not null" json:"user_id"`
	Data   []byte `gorm:"not null" json:"data"`
}
