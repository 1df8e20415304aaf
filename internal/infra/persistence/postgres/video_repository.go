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
)

// Columns listings may be sorted by. Anything else falls back to created_at.
var videoSortColumns = map[string]string{
	"created_at": "created_at",
	"views":      "views",
	"duration":   "duration",
	"title":      "title",
}

// videoRepository implements the domain.VideoRepository interface using GORM.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{db: db}
}

// Create persists a new video entity to the database.
func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

// FindByID retrieves a single video with its owner populated.
func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel
	if err := repo.db.WithContext(ctx).Preload("Owner").First(&videoM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by id")
	}

	return toVideoDomain(&videoM), nil
}

// List returns one page of videos matching the query plus the total number of matches.
func (repo *videoRepository) List(ctx context.Context, query repository.VideoQuery) ([]*entity.Video, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.VideoModel{})

	if !query.IncludeUnpublished {
		tx = tx.Where("is_published = ?", true)
	}
	if query.OwnerID != nil {
		tx = tx.Where("owner_id = ?", *query.OwnerID)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count videos")
	}

	column, ok := videoSortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if query.SortAscending {
		direction = "ASC"
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	var videoMs []*model.VideoModel
	if err := tx.
		Preload("Owner").
		Order(column + " " + direction).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videoMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list videos")
	}

	videos := make([]*entity.Video, 0, len(videoMs))
	for _, videoM := range videoMs {
		videos = append(videos, toVideoDomain(videoM))
	}

	return videos, total, nil
}

// Update modifies the video's mutable metadata.
func (repo *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	updates := map[string]any{
		"title":         video.Title,
		"description":   video.Description,
		"thumbnail_url": video.ThumbnailURL,
	}

	if err := repo.db.WithContext(ctx).Model(&model.VideoModel{}).
		Where("id = ?", video.ID).
		Updates(updates).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update video")
	}

	return nil
}

// SetPublished flips the publish flag without touching other columns.
func (repo *videoRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	if err := repo.db.WithContext(ctx).Model(&model.VideoModel{}).
		Where("id = ?", id).
		Update("is_published", published).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to toggle publish state")
	}

	return nil
}

// IncrementViews adds one to the view counter and returns the new total.
func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := repo.db.WithContext(ctx).Model(&model.VideoModel{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to increment views")
	}

	var views int64
	if err := repo.db.WithContext(ctx).Model(&model.VideoModel{}).
		Select("views").
		Where("id = ?", id).
		Scan(&views).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read view counter")
	}

	return views, nil
}

// Delete removes the video row.
func (repo *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.VideoModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete video")
	}

	return nil
}

// CountByOwner returns the number of videos uploaded by the owner.
func (repo *videoRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.VideoModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count videos by owner")
	}

	return count, nil
}

// SumViewsByOwner returns the total views across the owner's videos.
func (repo *videoRepository) SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.VideoModel{}).
		Select("COALESCE(SUM(views), 0)").
		Where("owner_id = ?", ownerID).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum views by owner")
	}

	return total, nil
}

// toVideoDomain converts a GORM VideoModel to a domain Video entity.
func toVideoDomain(data *model.VideoModel) *entity.Video {
	if data == nil {
		return nil
	}

	return &entity.Video{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		VideoFileURL: data.VideoFileURL,
		ThumbnailURL: data.ThumbnailURL,
		Title:        data.Title,
		Description:  data.Description,
		Duration:     data.Duration,
		Views:        data.Views,
		IsPublished:  data.IsPublished,
		Owner:        toUserDomain(data.Owner),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromVideoDomain converts a domain Video entity to a GORM VideoModel for persistence.
func fromVideoDomain(data *entity.Video) *model.VideoModel {
	if data == nil {
		return nil
	}

	return &model.VideoModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		VideoFileURL: data.VideoFileURL,
		ThumbnailURL: data.ThumbnailURL,
		Title:        data.Title,
		Description:  data.Description,
		Duration:     data.Duration,
		Views:        data.Views,
		IsPublished:  data.IsPublished,
	}
}
