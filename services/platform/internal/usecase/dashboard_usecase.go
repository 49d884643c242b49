package usecase

import (
	"context"

	"vidtube/pkg/logger"
	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/repo/persistent"
)

type DashboardUseCase interface {
	GetChannelStats(ctx context.Context, actorID string) (*entity.ChannelStats, error)
	GetChannelVideos(ctx context.Context, actorID string, page, limit int) (entity.Page[*entity.Video], error)
}

type dashboardUseCase struct {
	aggregationRepo persistent.AggregationRepository
	logger          *logger.Logger
}

func NewDashboardUseCase(aggregationRepo persistent.AggregationRepository, logger *logger.Logger) DashboardUseCase {
	return &dashboardUseCase{
		aggregationRepo: aggregationRepo,
		logger:          logger,
	}
}

func (uc *dashboardUseCase) GetChannelStats(ctx context.Context, actorID string) (*entity.ChannelStats, error) {
	return uc.aggregationRepo.ChannelStats(ctx, actorID)
}

// GetChannelVideos lists every video the actor owns, published or not.
func (uc *dashboardUseCase) GetChannelVideos(ctx context.Context, actorID string, page, limit int) (entity.Page[*entity.Video], error) {
	req, err := entity.NewPageRequest(page, limit)
	if err != nil {
		return entity.Page[*entity.Video]{}, err
	}

	filter := entity.VideoFilter{ViewerID: actorID, OwnerID: actorID, SortDesc: true}
	videos, total, err := uc.aggregationRepo.ListVideos(ctx, filter, req)
	if err != nil {
		return entity.Page[*entity.Video]{}, err
	}
	return entity.NewPage(videos, req, total), nil
}
