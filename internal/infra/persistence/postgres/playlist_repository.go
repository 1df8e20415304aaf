package postgres

import (
	"context"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// playlistRepository implements the domain.PlaylistRepository interface using GORM.
type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{db: db}
}

// Create persists a new playlist.
func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistM := &model.PlaylistModel{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
	}

	if err := repo.db.WithContext(ctx).Create(playlistM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist")
	}

	playlist.ID = playlistM.ID
	playlist.CreatedAt = playlistM.CreatedAt
	playlist.UpdatedAt = playlistM.UpdatedAt

	return nil
}

// FindByID retrieves a single playlist with its member videos populated in
// insertion order.
func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel
	if err := repo.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("playlist_videos.position ASC")
		}).
		Preload("Videos.Video").
		Preload("Videos.Video.Owner").
		First(&playlistM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by id")
	}

	return toPlaylistDomain(&playlistM), nil
}

// FindByOwner returns all playlists owned by the user, newest first.
func (repo *playlistRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var playlistMs []*model.PlaylistModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlistMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list playlists by owner")
	}

	playlists := make([]*entity.Playlist, 0, len(playlistMs))
	for _, playlistM := range playlistMs {
		playlists = append(playlists, toPlaylistDomain(playlistM))
	}

	return playlists, nil
}

// Update modifies the playlist's name and description.
func (repo *playlistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	updates := map[string]any{
		"name":        playlist.Name,
		"description": playlist.Description,
	}

	if err := repo.db.WithContext(ctx).Model(&model.PlaylistModel{}).
		Where("id = ?", playlist.ID).
		Updates(updates).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update playlist")
	}

	return nil
}

// Delete removes the playlist and its membership rows.
func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.PlaylistVideoModel{}, "playlist_id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete playlist memberships")
	}
	if err := repo.db.WithContext(ctx).Delete(&model.PlaylistModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete playlist")
	}

	return nil
}

// AddVideo appends a video to the playlist. Adding a video that is already a
// member is a no-op.
func (repo *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	var nextPosition int
	if err := repo.db.WithContext(ctx).Model(&model.PlaylistVideoModel{}).
		Select("COALESCE(MAX(position), 0) + 1").
		Where("playlist_id = ?", playlistID).
		Scan(&nextPosition).Error; err != nil {
		return errors.Wrap(err, "failed to compute playlist position")
	}

	member := model.PlaylistVideoModel{
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   nextPosition,
	}

	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "playlist_id"}, {Name: "video_id"}},
		DoNothing: true,
	}).Create(&member).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add video to playlist")
	}

	return nil
}

// RemoveVideo removes a video from the playlist.
func (repo *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.PlaylistVideoModel{}, "playlist_id = ? AND video_id = ?", playlistID, videoID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove video from playlist")
	}

	return nil
}

// toPlaylistDomain converts a GORM PlaylistModel to a domain Playlist entity.
func toPlaylistDomain(data *model.PlaylistModel) *entity.Playlist {
	if data == nil {
		return nil
	}

	videos := make([]*entity.Video, 0, len(data.Videos))
	for _, member := range data.Videos {
		if member.Video != nil {
			videos = append(videos, toVideoDomain(member.Video))
		}
	}

	return &entity.Playlist{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Videos:      videos,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
