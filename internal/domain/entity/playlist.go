package entity

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is a named, ordered collection of videos owned by a user.
type Playlist struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the playlist.
	OwnerID     uuid.UUID // The user who owns the playlist.
	Name        string    // Display name.
	Description string    // Free-form description.
	Videos      []*Video  // Member videos in insertion order, populated on reads.
	CreatedAt   time.Time // Timestamp of when the playlist was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
