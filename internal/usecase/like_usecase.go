package usecase

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// LikeUsecase defines the interface for like-related business operations.
// Toggle operations return the resulting state: true when the like now
// exists, false when it was removed.
type LikeUsecase interface {
	ToggleVideoLike(ctx context.Context, videoID, userID uuid.UUID) (bool, error)
	ToggleCommentLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error)
	ToggleTweetLike(ctx context.Context, tweetID, userID uuid.UUID) (bool, error)

	// GetLikedVideos returns the videos the user has liked, most recent like first.
	GetLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error)
}
