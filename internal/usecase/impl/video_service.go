package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/domain/service"
	"clipstream/internal/usecase"
	"clipstream/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Media key prefixes for stored video objects.
const (
	mediaPrefixVideos     = "videos"
	mediaPrefixThumbnails = "thumbnails"
)

// Listing defaults.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// videoService implements the VideoUsecase interface.
type videoService struct {
	txManager      repository.TransactionManager
	videoRepo      repository.VideoRepository
	userRepo       repository.UserRepository
	mediaStorage   service.MediaStorage
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// VideoServiceParams holds dependencies for videoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	VideoRepo      repository.VideoRepository
	UserRepo       repository.UserRepository
	MediaStorage   service.MediaStorage
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewVideoService is the constructor for videoService.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		txManager:      params.TxManager,
		videoRepo:      params.VideoRepo,
		userRepo:       params.UserRepo,
		mediaStorage:   params.MediaStorage,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListVideos returns one page of published videos matching the input.
func (srv *videoService) ListVideos(ctx context.Context, input *usecase.ListVideosInput) (*entity.VideoPage, error) {
	page, limit := normalizePagination(input.Page, input.Limit)

	query := repository.VideoQuery{
		Search:        input.Search,
		OwnerID:       input.OwnerID,
		SortBy:        input.SortBy,
		SortAscending: input.SortOrder == "asc",
		Page:          page,
		Limit:         limit,
	}

	videos, total, err := srv.videoRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return newVideoPage(videos, total, page, limit), nil
}

// PublishVideo stores the uploaded files, persists the video and emits a
// published event.
func (srv *videoService) PublishVideo(ctx context.Context, input *usecase.PublishVideoInput) (*entity.Video, error) {
	srv.log(ctx).Info("Publishing video",
		slog.Any("owner_id", input.OwnerID),
		slog.String("title", input.Title),
		slog.String("duration", util.FormatDuration(time.Duration(input.Duration*float64(time.Second)))),
	)

	// 1. Both the video file and the thumbnail are mandatory
	if input.VideoFile == nil {
		return nil, errors.Wrap(domainerrors.ErrVideoFileMissing, "video file upload is required")
	}
	if input.Thumbnail == nil {
		return nil, errors.Wrap(domainerrors.ErrThumbnailMissing, "thumbnail upload is required")
	}

	// 2. Store the media before the database row exists
	videoURL, err := srv.mediaStorage.Upload(ctx, mediaPrefixVideos, input.VideoFile.Filename, input.VideoFile.ContentType, input.VideoFile.Content)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrVideoUploadFailed, err.Error())
	}

	thumbURL, err := srv.mediaStorage.Upload(ctx, mediaPrefixThumbnails, input.Thumbnail.Filename, input.Thumbnail.ContentType, input.Thumbnail.Content)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrVideoUploadFailed, err.Error())
	}

	video := &entity.Video{
		ID:           uuid.New(),
		OwnerID:      input.OwnerID,
		VideoFileURL: videoURL,
		ThumbnailURL: thumbURL,
		Title:        input.Title,
		Description:  input.Description,
		Duration:     input.Duration,
		IsPublished:  true,
	}

	// 3. Persist the video
	if err := srv.videoRepo.Create(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to create video")
	}
	srv.log(ctx).Info("Video published", slog.Any("video_id", video.ID))

	// 4. Announce the new video. Publishing failures must not undo the upload.
	srv.publishEvent(ctx, service.VideoEventPublished, video)

	return video, nil
}

// GetVideo returns a single video by ID.
func (srv *videoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	return video, nil
}

// UpdateVideo changes the video's metadata. Only the owner may update.
func (srv *videoService) UpdateVideo(ctx context.Context, input *usecase.UpdateVideoInput) (*entity.Video, error) {
	srv.log(ctx).Info("Updating video", slog.Any("video_id", input.VideoID))

	// 1. Load and authorize
	video, err := srv.ownedVideo(ctx, input.VideoID, input.CallerID)
	if err != nil {
		return nil, err
	}

	// 2. Apply the provided fields
	if input.Title != nil {
		video.Title = *input.Title
	}
	if input.Description != nil {
		video.Description = *input.Description
	}

	oldThumbURL := ""
	if input.Thumbnail != nil {
		thumbURL, err := srv.mediaStorage.Upload(ctx, mediaPrefixThumbnails, input.Thumbnail.Filename, input.Thumbnail.ContentType, input.Thumbnail.Content)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
		}
		oldThumbURL = video.ThumbnailURL
		video.ThumbnailURL = thumbURL
	}

	// 3. Persist the changes
	if err := srv.videoRepo.Update(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to update video")
	}

	// 4. Best-effort cleanup of the replaced thumbnail
	if oldThumbURL != "" {
		if err := srv.mediaStorage.Delete(ctx, oldThumbURL); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced thumbnail", slog.Any("error", err), slog.String("url", oldThumbURL))
		}
	}

	return video, nil
}

// DeleteVideo removes the video, its likes and comments, and its stored media.
// Only the owner may delete.
func (srv *videoService) DeleteVideo(ctx context.Context, videoID, callerID uuid.UUID) error {
	srv.log(ctx).Info("Deleting video", slog.Any("video_id", videoID))

	// 1. Load and authorize outside the transaction
	video, err := srv.ownedVideo(ctx, videoID, callerID)
	if err != nil {
		return err
	}

	// 2. Remove the row and its dependents atomically
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewLikeRepository().DeleteByVideo(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to delete video likes")
		}
		if err := repoFactory.NewCommentRepository().DeleteByVideo(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to delete video comments")
		}
		if err := repoFactory.NewVideoRepository().Delete(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to delete video")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Video deletion failed", slog.Any("error", err), slog.Any("video_id", videoID))

		return err
	}

	// 3. Best-effort removal of the stored media
	for _, url := range []string{video.VideoFileURL, video.ThumbnailURL} {
		if url == "" {
			continue
		}
		if err := srv.mediaStorage.Delete(ctx, url); err != nil {
			srv.log(ctx).Warn("Failed to delete video media", slog.Any("error", err), slog.String("url", url))
		}
	}

	// 4. Announce the removal
	srv.publishEvent(ctx, service.VideoEventDeleted, video)
	srv.log(ctx).Info("Video deleted", slog.Any("video_id", videoID))

	return nil
}

// TogglePublishStatus flips the video's publish flag. Only the owner may toggle.
func (srv *videoService) TogglePublishStatus(ctx context.Context, videoID, callerID uuid.UUID) (*entity.Video, error) {
	video, err := srv.ownedVideo(ctx, videoID, callerID)
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := srv.videoRepo.SetPublished(ctx, videoID, video.IsPublished); err != nil {
		return nil, errors.Wrap(err, "failed to toggle publish status")
	}
	srv.log(ctx).Info("Publish status toggled", slog.Any("video_id", videoID), slog.Bool("is_published", video.IsPublished))

	return video, nil
}

// RecordView increments the view counter and, when viewerID is set, records
// the video in the viewer's watch history.
func (srv *videoService) RecordView(ctx context.Context, videoID, viewerID uuid.UUID) (int64, error) {
	var views int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		videoRepo := repoFactory.NewVideoRepository()

		// 1. The video must exist
		if _, err := videoRepo.FindByID(ctx, videoID); err != nil {
			if errors.Is(err, repository.ErrVideoNotFound) {
				return errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
			}

			return errors.Wrap(err, "failed to find video")
		}

		// 2. Count the view
		newViews, err := videoRepo.IncrementViews(ctx, videoID)
		if err != nil {
			return errors.Wrap(err, "failed to increment views")
		}
		views = newViews

		// 3. Track watch history for authenticated viewers
		if viewerID != uuid.Nil {
			if err := repoFactory.NewUserRepository().AddWatchEntry(ctx, viewerID, videoID); err != nil {
				return errors.Wrap(err, "failed to record watch history")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to record view", slog.Any("error", err), slog.Any("video_id", videoID))

		return 0, err
	}

	return views, nil
}

// ownedVideo loads the video and verifies the caller owns it.
func (srv *videoService) ownedVideo(ctx context.Context, videoID, callerID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	if video.OwnerID != callerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner may modify this video")
	}

	return video, nil
}

// publishEvent sends a video lifecycle event. Failures are logged only.
func (srv *videoService) publishEvent(ctx context.Context, eventType string, video *entity.Video) {
	event := &service.VideoEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventType:   eventType,
		VideoID:     video.ID.String(),
		OwnerID:     video.OwnerID.String(),
		Title:       video.Title,
		PublishedAt: time.Now().UTC(),
	}

	if err := srv.eventPublisher.PublishVideoEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish video event", slog.Any("error", err), slog.String("event_type", eventType), slog.Any("video_id", video.ID))
	}
}

// normalizePagination clamps page and limit to sane bounds.
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// newVideoPage assembles a listing page with its pagination totals.
func newVideoPage(videos []*entity.Video, total int64, page, limit int) *entity.VideoPage {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &entity.VideoPage{
		Videos:     videos,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
