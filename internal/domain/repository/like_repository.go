package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLikeNotFound is returned when a like record is not found.
var ErrLikeNotFound = errors.New("like not found")

// LikeRepository defines the standard operations for like persistence.
type LikeRepository interface {
	// Create persists a new like.
	Create(ctx context.Context, like *entity.Like) error

	// Delete removes a like by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByUserAndVideo retrieves the user's like on a video, if any.
	FindByUserAndVideo(ctx context.Context, userID, videoID uuid.UUID) (*entity.Like, error)

	// FindByUserAndComment retrieves the user's like on a comment, if any.
	FindByUserAndComment(ctx context.Context, userID, commentID uuid.UUID) (*entity.Like, error)

	// FindByUserAndTweet retrieves the user's like on a tweet, if any.
	FindByUserAndTweet(ctx context.Context, userID, tweetID uuid.UUID) (*entity.Like, error)

	// ListLikedVideos returns the videos the user has liked, newest like first.
	ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error)

	// CountByVideoOwner returns the number of likes received across all
	// videos uploaded by ownerID.
	CountByVideoOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// DeleteByVideo removes all likes attached to a video.
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) error

	// DeleteByComment removes all likes attached to a comment.
	DeleteByComment(ctx context.Context, commentID uuid.UUID) error

	// DeleteByTweet removes all likes attached to a tweet.
	DeleteByTweet(ctx context.Context, tweetID uuid.UUID) error
}
