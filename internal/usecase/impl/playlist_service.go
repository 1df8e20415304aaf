package impl

import (
	"context"
	"log/slog"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// playlistService implements the PlaylistUsecase interface.
type playlistService struct {
	txManager    repository.TransactionManager
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	logger       *slog.Logger
}

// PlaylistServiceParams holds dependencies for playlistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PlaylistRepo repository.PlaylistRepository
	VideoRepo    repository.VideoRepository
	Logger       *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		txManager:    params.TxManager,
		playlistRepo: params.PlaylistRepo,
		videoRepo:    params.VideoRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *playlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePlaylist creates a new, empty playlist.
func (srv *playlistService) CreatePlaylist(ctx context.Context, input *usecase.CreatePlaylistInput) (*entity.Playlist, error) {
	srv.log(ctx).Info("Creating playlist", slog.Any("owner_id", input.OwnerID), slog.String("name", input.Name))

	playlist := &entity.Playlist{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to create playlist")
	}

	return playlist, nil
}

// GetPlaylist returns the playlist with its videos in playlist order.
func (srv *playlistService) GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaylistNotFound, "playlist not found")
		}

		return nil, errors.Wrap(err, "failed to find playlist")
	}

	return playlist, nil
}

// GetUserPlaylists returns all playlists owned by the given user.
func (srv *playlistService) GetUserPlaylists(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	playlists, err := srv.playlistRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}

	return playlists, nil
}

// UpdatePlaylist changes the playlist's metadata. Only the owner may update.
func (srv *playlistService) UpdatePlaylist(ctx context.Context, input *usecase.UpdatePlaylistInput) (*entity.Playlist, error) {
	playlist, err := srv.ownedPlaylist(ctx, input.PlaylistID, input.CallerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		playlist.Name = *input.Name
	}
	if input.Description != nil {
		playlist.Description = *input.Description
	}

	if err := srv.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to update playlist")
	}

	return playlist, nil
}

// DeletePlaylist removes the playlist and its memberships. Only the owner may delete.
func (srv *playlistService) DeletePlaylist(ctx context.Context, playlistID, callerID uuid.UUID) error {
	if _, err := srv.ownedPlaylist(ctx, playlistID, callerID); err != nil {
		return err
	}

	if err := srv.playlistRepo.Delete(ctx, playlistID); err != nil {
		return errors.Wrap(err, "failed to delete playlist")
	}
	srv.log(ctx).Info("Playlist deleted", slog.Any("playlist_id", playlistID))

	return nil
}

// AddVideo appends a video to the playlist. Only the owner may modify.
func (srv *playlistService) AddVideo(ctx context.Context, playlistID, videoID, callerID uuid.UUID) (*entity.Playlist, error) {
	// 1. Authorize against the playlist owner
	if _, err := srv.ownedPlaylist(ctx, playlistID, callerID); err != nil {
		return nil, err
	}

	// 2. The video must exist
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	// 3. Record the membership
	if err := srv.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, errors.Wrap(err, "failed to add video to playlist")
	}

	return srv.GetPlaylist(ctx, playlistID)
}

// RemoveVideo removes a video from the playlist. Only the owner may modify.
func (srv *playlistService) RemoveVideo(ctx context.Context, playlistID, videoID, callerID uuid.UUID) (*entity.Playlist, error) {
	if _, err := srv.ownedPlaylist(ctx, playlistID, callerID); err != nil {
		return nil, err
	}

	if err := srv.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, errors.Wrap(err, "failed to remove video from playlist")
	}

	return srv.GetPlaylist(ctx, playlistID)
}

// ownedPlaylist loads the playlist and verifies the caller owns it.
func (srv *playlistService) ownedPlaylist(ctx context.Context, playlistID, callerID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaylistNotFound, "playlist not found")
		}

		return nil, errors.Wrap(err, "failed to find playlist")
	}

	if playlist.OwnerID != callerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner may modify this playlist")
	}

	return playlist, nil
}
