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

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for subscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	SubscriptionRepo repository.SubscriptionRepository
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager:        params.TxManager,
		subscriptionRepo: params.SubscriptionRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleSubscription subscribes or unsubscribes the caller to the channel and
// returns the resulting state: true when subscribed.
func (srv *subscriptionService) ToggleSubscription(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error) {
	if channelID == subscriberID {
		return false, errors.Wrap(domainerrors.ErrSelfSubscription, "channel and subscriber are the same user")
	}

	var subscribed bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subscriptionRepo := repoFactory.NewSubscriptionRepository()

		// 1. The channel must belong to an existing user
		if _, err := repoFactory.NewUserRepository().FindByID(ctx, channelID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrChannelNotFound, "channel not found")
			}

			return errors.Wrap(err, "failed to find channel")
		}

		// 2. Flip the subscription
		existing, err := subscriptionRepo.Find(ctx, subscriberID, channelID)
		if err == nil {
			if err := subscriptionRepo.Delete(ctx, existing.ID); err != nil {
				return errors.Wrap(err, "failed to remove subscription")
			}
			subscribed = false

			return nil
		}
		if !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return errors.Wrap(err, "failed to look up subscription")
		}

		subscription := &entity.Subscription{
			ID:           uuid.New(),
			SubscriberID: subscriberID,
			ChannelID:    channelID,
		}
		if err := subscriptionRepo.Create(ctx, subscription); err != nil {
			return errors.Wrap(err, "failed to create subscription")
		}
		subscribed = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to toggle subscription", slog.Any("error", err), slog.Any("channel_id", channelID), slog.Any("subscriber_id", subscriberID))

		return false, err
	}
	srv.log(ctx).Debug("Subscription toggled", slog.Any("channel_id", channelID), slog.Any("subscriber_id", subscriberID), slog.Bool("subscribed", subscribed))

	return subscribed, nil
}

// GetChannelSubscribers returns the users subscribed to the channel.
func (srv *subscriptionService) GetChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.User, error) {
	subscribers, err := srv.subscriptionRepo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channel subscribers")
	}

	return subscribers, nil
}

// GetSubscribedChannels returns the channels the user is subscribed to.
func (srv *subscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.User, error) {
	channels, err := srv.subscriptionRepo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	return channels, nil
}
