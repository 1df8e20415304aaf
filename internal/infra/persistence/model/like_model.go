package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. Exactly one of VideoID, CommentID
// and TweetID is non-NULL; a partial unique index per target column keeps
// a user from liking the same resource twice.
type LikeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LikedByID uuid.UUID  `gorm:"type:uuid;not null;index"`
	VideoID   *uuid.UUID `gorm:"type:uuid;index"`
	CommentID *uuid.UUID `gorm:"type:uuid;index"`
	TweetID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
