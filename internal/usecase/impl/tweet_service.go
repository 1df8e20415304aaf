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

// tweetService implements the TweetUsecase interface.
type tweetService struct {
	txManager repository.TransactionManager
	tweetRepo repository.TweetRepository
	logger    *slog.Logger
}

// TweetServiceParams holds dependencies for tweetService, injected by Fx.
type TweetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TweetRepo repository.TweetRepository
	Logger    *slog.Logger
}

// NewTweetService is the constructor for tweetService.
func NewTweetService(params TweetServiceParams) usecase.TweetUsecase {
	return &tweetService{
		txManager: params.TxManager,
		tweetRepo: params.TweetRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tweetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTweet posts a new tweet on the user's channel feed.
func (srv *tweetService) CreateTweet(ctx context.Context, ownerID uuid.UUID, content string) (*entity.Tweet, error) {
	srv.log(ctx).Debug("Creating tweet", slog.Any("owner_id", ownerID))

	tweet := &entity.Tweet{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Content: content,
	}

	if err := srv.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, errors.Wrap(err, "failed to create tweet")
	}

	return tweet, nil
}

// GetUserTweets returns the user's tweets, newest first. An empty result is
// reported as not found.
func (srv *tweetService) GetUserTweets(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	tweets, err := srv.tweetRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tweets")
	}

	if len(tweets) == 0 {
		return nil, errors.Wrap(domainerrors.ErrNoTweetsFound, "user has no tweets")
	}

	return tweets, nil
}

// UpdateTweet changes a tweet's content. Only the author may update.
func (srv *tweetService) UpdateTweet(ctx context.Context, tweetID, callerID uuid.UUID, content string) (*entity.Tweet, error) {
	tweet, err := srv.ownedTweet(ctx, tweetID, callerID)
	if err != nil {
		return nil, err
	}

	tweet.Content = content
	if err := srv.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, errors.Wrap(err, "failed to update tweet")
	}

	return tweet, nil
}

// DeleteTweet removes a tweet and its likes. Only the author may delete.
func (srv *tweetService) DeleteTweet(ctx context.Context, tweetID, callerID uuid.UUID) error {
	if _, err := srv.ownedTweet(ctx, tweetID, callerID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewLikeRepository().DeleteByTweet(ctx, tweetID); err != nil {
			return errors.Wrap(err, "failed to delete tweet likes")
		}
		if err := repoFactory.NewTweetRepository().Delete(ctx, tweetID); err != nil {
			return errors.Wrap(err, "failed to delete tweet")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Tweet deletion failed", slog.Any("error", err), slog.Any("tweet_id", tweetID))

		return err
	}

	return nil
}

// ownedTweet loads the tweet and verifies the caller wrote it.
func (srv *tweetService) ownedTweet(ctx context.Context, tweetID, callerID uuid.UUID) (*entity.Tweet, error) {
	tweet, err := srv.tweetRepo.FindByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrTweetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTweetNotFound, "tweet not found")
		}

		return nil, errors.Wrap(err, "failed to find tweet")
	}

	if tweet.OwnerID != callerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the author may modify this tweet")
	}

	return tweet, nil
}
