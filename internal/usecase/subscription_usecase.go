package usecase

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase defines the interface for subscription-related business
// operations.
type SubscriptionUsecase interface {
	// ToggleSubscription subscribes or unsubscribes the caller to the channel
	// and returns the resulting state: true when subscribed. Subscribing to
	// one's own channel is rejected.
	ToggleSubscription(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error)

	// GetChannelSubscribers returns the users subscribed to the channel.
	GetChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.User, error)

	// GetSubscribedChannels returns the channels the user is subscribed to.
	GetSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.User, error)
}
