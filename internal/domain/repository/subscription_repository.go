package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the standard operations for subscription persistence.
type SubscriptionRepository interface {
	// Create persists a new subscription.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// Delete removes a subscription by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Find retrieves the subscription linking subscriberID to channelID, if any.
	Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error)

	// ListSubscribers returns the users subscribed to the channel.
	ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.User, error)

	// ListSubscribedChannels returns the channels the user subscribes to.
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.User, error)

	// CountSubscribers returns the number of subscribers to the channel.
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)
}
