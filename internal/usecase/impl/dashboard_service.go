package impl

import (
	"context"
	"log/slog"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	"clipstream/internal/domain/repository"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	videoRepo        repository.VideoRepository
	subscriptionRepo repository.SubscriptionRepository
	likeRepo         repository.LikeRepository
	logger           *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	VideoRepo        repository.VideoRepository
	SubscriptionRepo repository.SubscriptionRepository
	LikeRepo         repository.LikeRepository
	Logger           *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		videoRepo:        params.VideoRepo,
		subscriptionRepo: params.SubscriptionRepo,
		likeRepo:         params.LikeRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetChannelStats aggregates totals for the channel owner's videos, views,
// subscribers and likes.
func (srv *dashboardService) GetChannelStats(ctx context.Context, channelID uuid.UUID) (*entity.ChannelStats, error) {
	srv.log(ctx).Debug("Loading channel stats", slog.Any("channel_id", channelID))

	totalVideos, err := srv.videoRepo.CountByOwner(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count videos")
	}

	totalViews, err := srv.videoRepo.SumViewsByOwner(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum views")
	}

	totalSubscribers, err := srv.subscriptionRepo.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}

	totalLikes, err := srv.likeRepo.CountByVideoOwner(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count likes")
	}

	return &entity.ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}, nil
}

// GetChannelVideos returns all videos uploaded by the channel owner, including
// unpublished ones.
func (srv *dashboardService) GetChannelVideos(ctx context.Context, channelID uuid.UUID) ([]*entity.Video, error) {
	videos, _, err := srv.videoRepo.List(ctx, repository.VideoQuery{
		OwnerID:            &channelID,
		IncludeUnpublished: true,
		Page:               1,
		Limit:              maxLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channel videos")
	}

	return videos, nil
}
