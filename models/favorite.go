package models

import "time"

// Favorite is a user's bookmark on a file. The unique index keeps at most
// one row per (user, file) pair; toggling flips presence.
type Favorite struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uk_user_file,priority:1;index" json:"user_id"`
	OrgID     string    `gorm:"type:varchar(255);not null;index" json:"org_id"`
	FileID    uint      `gorm:"not null;uniqueIndex:uk_user_file,priority:2;index" json:"file_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
