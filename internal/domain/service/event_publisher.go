package service

import (
	"context"
	"time"
)

// VideoEvent represents a lifecycle event on a video, published for
// downstream consumers such as feed builders and notification fanout.
type VideoEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventType   string    `json:"event_type"`           // "video.published" or "video.deleted"
	VideoID     string    `json:"video_id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
}

// Video event types.
const (
	VideoEventPublished = "video.published"
	VideoEventDeleted   = "video.deleted"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVideoEvent publishes a video lifecycle event for async processing
	PublishVideoEvent(ctx context.Context, event *VideoEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
