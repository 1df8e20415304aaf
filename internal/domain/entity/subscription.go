// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription represents a user following another user's channel.
type Subscription struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the subscription.
	SubscriberID uuid.UUID `json:"subscriber_id"` // The user who subscribed.
	ChannelID    uuid.UUID `json:"channel_id"`    // The user whose channel is being subscribed to.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when the subscription was created.
}
