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

// likeService implements the LikeUsecase interface.
type likeService struct {
	txManager repository.TransactionManager
	likeRepo  repository.LikeRepository
	logger    *slog.Logger
}

// LikeServiceParams holds dependencies for likeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	LikeRepo  repository.LikeRepository
	Logger    *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		txManager: params.TxManager,
		likeRepo:  params.LikeRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleVideoLike flips the user's like on a video.
func (srv *likeService) ToggleVideoLike(ctx context.Context, videoID, userID uuid.UUID) (bool, error) {
	var liked bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. The video must exist
		if _, err := repoFactory.NewVideoRepository().FindByID(ctx, videoID); err != nil {
			if errors.Is(err, repository.ErrVideoNotFound) {
				return errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
			}

			return errors.Wrap(err, "failed to find video")
		}

		// 2. Flip the like
		likeRepo := repoFactory.NewLikeRepository()
		existing, err := likeRepo.FindByUserAndVideo(ctx, userID, videoID)

		var flipErr error
		liked, flipErr = srv.flip(ctx, likeRepo, existing, err, &entity.Like{
			ID:        uuid.New(),
			LikedByID: userID,
			VideoID:   &videoID,
		})

		return flipErr
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to toggle video like", slog.Any("error", err), slog.Any("video_id", videoID))

		return false, err
	}

	return liked, nil
}

// ToggleCommentLike flips the user's like on a comment.
func (srv *likeService) ToggleCommentLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	var liked bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. The comment must exist
		if _, err := repoFactory.NewCommentRepository().FindByID(ctx, commentID); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
			}

			return errors.Wrap(err, "failed to find comment")
		}

		// 2. Flip the like
		likeRepo := repoFactory.NewLikeRepository()
		existing, err := likeRepo.FindByUserAndComment(ctx, userID, commentID)

		var flipErr error
		liked, flipErr = srv.flip(ctx, likeRepo, existing, err, &entity.Like{
			ID:        uuid.New(),
			LikedByID: userID,
			CommentID: &commentID,
		})

		return flipErr
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to toggle comment like", slog.Any("error", err), slog.Any("comment_id", commentID))

		return false, err
	}

	return liked, nil
}

// ToggleTweetLike flips the user's like on a tweet.
func (srv *likeService) ToggleTweetLike(ctx context.Context, tweetID, userID uuid.UUID) (bool, error) {
	var liked bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. The tweet must exist
		if _, err := repoFactory.NewTweetRepository().FindByID(ctx, tweetID); err != nil {
			if errors.Is(err, repository.ErrTweetNotFound) {
				return errors.Wrap(domainerrors.ErrTweetNotFound, "tweet not found")
			}

			return errors.Wrap(err, "failed to find tweet")
		}

		// 2. Flip the like
		likeRepo := repoFactory.NewLikeRepository()
		existing, err := likeRepo.FindByUserAndTweet(ctx, userID, tweetID)

		var flipErr error
		liked, flipErr = srv.flip(ctx, likeRepo, existing, err, &entity.Like{
			ID:        uuid.New(),
			LikedByID: userID,
			TweetID:   &tweetID,
		})

		return flipErr
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to toggle tweet like", slog.Any("error", err), slog.Any("tweet_id", tweetID))

		return false, err
	}

	return liked, nil
}

// flip removes an existing like or creates the given new one. It returns the
// resulting state: true when the like now exists.
func (srv *likeService) flip(ctx context.Context, likeRepo repository.LikeRepository, existing *entity.Like, findErr error, newLike *entity.Like) (bool, error) {
	if findErr == nil {
		if err := likeRepo.Delete(ctx, existing.ID); err != nil {
			return false, errors.Wrap(err, "failed to remove like")
		}

		return false, nil
	}
	if !errors.Is(findErr, repository.ErrLikeNotFound) {
		return false, errors.Wrap(findErr, "failed to look up like")
	}

	if err := likeRepo.Create(ctx, newLike); err != nil {
		return false, errors.Wrap(err, "failed to create like")
	}

	return true, nil
}

// GetLikedVideos returns the videos the user has liked, most recent like first.
func (srv *likeService) GetLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error) {
	videos, err := srv.likeRepo.ListLikedVideos(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	return videos, nil
}
