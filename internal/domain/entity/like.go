package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like records that a user liked exactly one likeable resource.
// Exactly one of VideoID, CommentID and TweetID is set.
type Like struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the like.
	LikedByID uuid.UUID  // The user who liked the resource.
	VideoID   *uuid.UUID // Set when the like targets a video.
	CommentID *uuid.UUID // Set when the like targets a comment.
	TweetID   *uuid.UUID // Set when the like targets a tweet.
	CreatedAt time.Time  // Timestamp of when the like was recorded.
}
