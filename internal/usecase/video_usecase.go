package usecase

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ListVideosInput defines listing parameters flowing in from the delivery layer.
type ListVideosInput struct {
	// Search filters by title and description. Empty means no filter.
	Search string

	// OwnerID restricts results to a single uploader when set.
	OwnerID *uuid.UUID

	// SortBy names the sort column; SortOrder is "asc" or "desc".
	SortBy    string
	SortOrder string

	Page  int
	Limit int
}

// PublishVideoInput defines the data required to publish a new video.
type PublishVideoInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Duration    float64
	VideoFile   *UploadFile
	Thumbnail   *UploadFile
}

// UpdateVideoInput defines the mutable video metadata. Nil fields are left
// untouched.
type UpdateVideoInput struct {
	VideoID     uuid.UUID
	CallerID    uuid.UUID
	Title       *string
	Description *string
	Thumbnail   *UploadFile
}

// VideoUsecase defines the interface for video-related business operations.
type VideoUsecase interface {
	// ListVideos returns one page of published videos matching the input.
	ListVideos(ctx context.Context, input *ListVideosInput) (*entity.VideoPage, error)

	// PublishVideo stores the uploaded files, persists the video and emits
	// a published event.
	PublishVideo(ctx context.Context, input *PublishVideoInput) (*entity.Video, error)

	// GetVideo returns a single video by ID.
	GetVideo(ctx context.Context, videoID uuid.UUID) (*entity.Video, error)

	// UpdateVideo changes the video's metadata. Only the owner may update.
	UpdateVideo(ctx context.Context, input *UpdateVideoInput) (*entity.Video, error)

	// DeleteVideo removes the video, its likes and comments, and its stored
	// media. Only the owner may delete.
	DeleteVideo(ctx context.Context, videoID, callerID uuid.UUID) error

	// TogglePublishStatus flips the video's publish flag. Only the owner may toggle.
	TogglePublishStatus(ctx context.Context, videoID, callerID uuid.UUID) (*entity.Video, error)

	// RecordView increments the view counter and, when viewerID is set,
	// records the video in the viewer's watch history. Returns the new total.
	RecordView(ctx context.Context, videoID, viewerID uuid.UUID) (int64, error)
}
