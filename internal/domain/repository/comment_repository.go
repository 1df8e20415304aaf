package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a single comment with its owner populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByVideo returns one page of a video's comments, newest first,
	// plus the total number of comments on the video.
	ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]*entity.Comment, int64, error)

	// Update modifies the comment's content.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes the comment row.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByVideo removes all comments attached to a video.
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) error
}
