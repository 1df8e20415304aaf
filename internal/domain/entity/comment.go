package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a user comment attached to a video.
type Comment struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the comment.
	VideoID   uuid.UUID // The video the comment belongs to.
	OwnerID   uuid.UUID // The user who wrote the comment.
	Content   string    // Comment text.
	Owner     *User     // Author details, populated on reads.
	CreatedAt time.Time // Timestamp of when the comment was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
