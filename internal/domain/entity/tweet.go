package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a short text post on a user's channel feed.
type Tweet struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the tweet.
	OwnerID   uuid.UUID // The user who posted the tweet.
	Content   string    // Tweet text.
	Owner     *User     // Author details, populated on reads.
	CreatedAt time.Time // Timestamp of when the tweet was posted.
	UpdatedAt time.Time // Timestamp of the last modification.
}
