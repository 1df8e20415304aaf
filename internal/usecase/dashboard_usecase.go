package usecase

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardUsecase defines the interface for channel dashboard operations.
type DashboardUsecase interface {
	// GetChannelStats aggregates totals for the channel owner's videos,
	// views, subscribers and likes.
	GetChannelStats(ctx context.Context, channelID uuid.UUID) (*entity.ChannelStats, error)

	// GetChannelVideos returns all videos uploaded by the channel owner,
	// including unpublished ones.
	GetChannelVideos(ctx context.Context, channelID uuid.UUID) ([]*entity.Video, error)
}
