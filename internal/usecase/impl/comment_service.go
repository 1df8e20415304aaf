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

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	VideoRepo   repository.VideoRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		videoRepo:   params.VideoRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddComment attaches a new comment to a video.
func (srv *commentService) AddComment(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*entity.Comment, error) {
	srv.log(ctx).Debug("Adding comment", slog.Any("video_id", videoID), slog.Any("owner_id", ownerID))

	// 1. The video must exist
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	comment := &entity.Comment{
		ID:      uuid.New(),
		VideoID: videoID,
		OwnerID: ownerID,
		Content: content,
	}

	// 2. Persist the comment
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

// ListComments returns one page of a video's comments, newest first.
func (srv *commentService) ListComments(ctx context.Context, videoID uuid.UUID, page, limit int) (*usecase.CommentPage, error) {
	// 1. The video must exist
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	// 2. Load the requested page
	page, limit = normalizePagination(page, limit)

	comments, total, err := srv.commentRepo.ListByVideo(ctx, videoID, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return &usecase.CommentPage{
		Comments:   comments,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

// UpdateComment changes a comment's content. Only the author may update.
func (srv *commentService) UpdateComment(ctx context.Context, commentID, callerID uuid.UUID, content string) (*entity.Comment, error) {
	comment, err := srv.ownedComment(ctx, commentID, callerID)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to update comment")
	}

	return comment, nil
}

// DeleteComment removes a comment and its likes. Only the author may delete.
func (srv *commentService) DeleteComment(ctx context.Context, commentID, callerID uuid.UUID) error {
	if _, err := srv.ownedComment(ctx, commentID, callerID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewLikeRepository().DeleteByComment(ctx, commentID); err != nil {
			return errors.Wrap(err, "failed to delete comment likes")
		}
		if err := repoFactory.NewCommentRepository().Delete(ctx, commentID); err != nil {
			return errors.Wrap(err, "failed to delete comment")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Comment deletion failed", slog.Any("error", err), slog.Any("comment_id", commentID))

		return err
	}

	return nil
}

// ownedComment loads the comment and verifies the caller wrote it.
func (srv *commentService) ownedComment(ctx context.Context, commentID, callerID uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	if comment.OwnerID != callerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the author may modify this comment")
	}

	return comment, nil
}
