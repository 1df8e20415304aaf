package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlaylistNotFound is returned when a playlist is not found.
var ErrPlaylistNotFound = errors.New("playlist not found")

// PlaylistRepository defines the standard operations for playlist persistence.
type PlaylistRepository interface {
	// Create persists a new playlist.
	Create(ctx context.Context, playlist *entity.Playlist) error

	// FindByID retrieves a single playlist with its member videos populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)

	// FindByOwner returns all playlists owned by the user, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// Update modifies the playlist's name and description.
	Update(ctx context.Context, playlist *entity.Playlist) error

	// Delete removes the playlist and its membership rows.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddVideo appends a video to the playlist. Adding a video that is
	// already a member is a no-op.
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error

	// RemoveVideo removes a video from the playlist.
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
}
