package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username      string    `gorm:"type:varchar(100);unique;not null"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	FullName      string    `gorm:"type:varchar(100);not null"`
	AvatarURL     string    `gorm:"type:text;not null"`
	CoverImageURL string    `gorm:"type:text"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	// RefreshToken holds the single currently valid refresh token.
	// NULL means the user is logged out.
	RefreshToken *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// WatchHistoryModel mirrors the 'watch_history' table. One row per
// (user, video) pair; repeat watches refresh WatchedAt.
type WatchHistoryModel struct {
	UserID    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	VideoID   uuid.UUID   `gorm:"type:uuid;primaryKey"`
	WatchedAt time.Time   `gorm:"not null;index"`
	Video     *VideoModel `gorm:"foreignKey:VideoID"`
}

// TableName explicitly sets the table name for GORM.
func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
