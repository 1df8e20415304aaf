package usecase

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentPage is one page of comments for a video.
type CommentPage struct {
	Comments   []*entity.Comment `json:"comments"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	// AddComment attaches a new comment to a video.
	AddComment(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*entity.Comment, error)

	// ListComments returns one page of a video's comments, newest first.
	ListComments(ctx context.Context, videoID uuid.UUID, page, limit int) (*CommentPage, error)

	// UpdateComment changes a comment's content. Only the author may update.
	UpdateComment(ctx context.Context, commentID, callerID uuid.UUID, content string) (*entity.Comment, error)

	// DeleteComment removes a comment and its likes. Only the author may delete.
	DeleteComment(ctx context.Context, commentID, callerID uuid.UUID) error
}
