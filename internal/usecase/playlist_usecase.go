package usecase

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlaylistInput defines the data required to create a playlist.
type CreatePlaylistInput struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
}

// UpdatePlaylistInput defines the mutable playlist metadata. Nil fields are
// left untouched.
type UpdatePlaylistInput struct {
	PlaylistID  uuid.UUID
	CallerID    uuid.UUID
	Name        *string
	Description *string
}

// PlaylistUsecase defines the interface for playlist-related business operations.
type PlaylistUsecase interface {
	CreatePlaylist(ctx context.Context, input *CreatePlaylistInput) (*entity.Playlist, error)

	// GetPlaylist returns the playlist with its videos in playlist order.
	GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error)

	// GetUserPlaylists returns all playlists owned by the given user.
	GetUserPlaylists(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// UpdatePlaylist changes the playlist's metadata. Only the owner may update.
	UpdatePlaylist(ctx context.Context, input *UpdatePlaylistInput) (*entity.Playlist, error)

	// DeletePlaylist removes the playlist and its memberships. Only the owner
	// may delete.
	DeletePlaylist(ctx context.Context, playlistID, callerID uuid.UUID) error

	// AddVideo appends a video to the playlist. Only the owner may modify.
	AddVideo(ctx context.Context, playlistID, videoID, callerID uuid.UUID) (*entity.Playlist, error)

	// RemoveVideo removes a video from the playlist. Only the owner may modify.
	RemoveVideo(ctx context.Context, playlistID, videoID, callerID uuid.UUID) (*entity.Playlist, error)
}
