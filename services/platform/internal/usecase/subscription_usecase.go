package usecase

import (
	"context"
	"time"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/pkg/metrics"
	"vidtube/pkg/queue"
	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/repo/persistent"
)

type SubscriptionUseCase interface {
	ToggleSubscription(ctx context.Context, subscriberID, channelID string) (*entity.ToggleResult, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string, page, limit int) (entity.Page[*entity.SubscriptionEdge], error)
	ListSubscribers(ctx context.Context, channelID string, page, limit int) (entity.Page[*entity.SubscriptionEdge], error)
	CountSubscribers(ctx context.Context, channelID string) (*entity.SubscriberCount, error)
}

type subscriptionUseCase struct {
	engagementRepo  persistent.EngagementRepository
	aggregationRepo persistent.AggregationRepository
	profileRepo     persistent.ProfileRepository
	publisher       EventPublisher
	logger          *logger.Logger
}

func NewSubscriptionUseCase(
	engagementRepo persistent.EngagementRepository,
	aggregationRepo persistent.AggregationRepository,
	profileRepo persistent.ProfileRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		engagementRepo:  engagementRepo,
		aggregationRepo: aggregationRepo,
		profileRepo:     profileRepo,
		publisher:       publisher,
		logger:          logger,
	}
}

// ToggleSubscription flips subscriberID -> channelID. Subscribing to your own
// channel is allowed.
func (uc *subscriptionUseCase) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (*entity.ToggleResult, error) {
	if err := validateID(channelID, "channel"); err != nil {
		return nil, err
	}

	// Unsubscribing works even when the channel no longer exists.
	subscribed, err := uc.engagementRepo.IsSubscribed(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if !subscribed {
		if err := uc.requireChannel(ctx, channelID); err != nil {
			return nil, err
		}
	}

	state, err := uc.engagementRepo.ToggleSubscription(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if subscribed && state == entity.ToggleAdded {
		if err := uc.requireChannel(ctx, channelID); err != nil {
			if _, undoErr := uc.engagementRepo.ToggleSubscription(ctx, subscriberID, channelID); undoErr != nil {
				uc.logger.Error("Failed to undo subscription to missing channel %s: %v", channelID, undoErr)
			}
			return nil, err
		}
	}
	metrics.ObserveToggle("subscription", string(state))

	if state == entity.ToggleAdded && subscriberID != channelID {
		publishAsync(uc.publisher, uc.logger, queue.Event{
			Type:       queue.EventSubscriptionAdded,
			ActorID:    subscriberID,
			TargetID:   channelID,
			OwnerID:    channelID,
			OccurredAt: time.Now().UTC(),
		})
	}

	return &entity.ToggleResult{State: state, TargetID: channelID}, nil
}

func (uc *subscriptionUseCase) ListSubscribedChannels(ctx context.Context, subscriberID string, page, limit int) (entity.Page[*entity.SubscriptionEdge], error) {
	if err := validateID(subscriberID, "subscriber"); err != nil {
		return entity.Page[*entity.SubscriptionEdge]{}, err
	}
	req, err := entity.NewPageRequest(page, limit)
	if err != nil {
		return entity.Page[*entity.SubscriptionEdge]{}, err
	}

	edges, total, err := uc.aggregationRepo.ListSubscribedChannels(ctx, subscriberID, req)
	if err != nil {
		return entity.Page[*entity.SubscriptionEdge]{}, err
	}
	return entity.NewPage(edges, req, total), nil
}

func (uc *subscriptionUseCase) ListSubscribers(ctx context.Context, channelID string, page, limit int) (entity.Page[*entity.SubscriptionEdge], error) {
	if err := validateID(channelID, "channel"); err != nil {
		return entity.Page[*entity.SubscriptionEdge]{}, err
	}
	req, err := entity.NewPageRequest(page, limit)
	if err != nil {
		return entity.Page[*entity.SubscriptionEdge]{}, err
	}

	edges, total, err := uc.aggregationRepo.ListSubscribers(ctx, channelID, req)
	if err != nil {
		return entity.Page[*entity.SubscriptionEdge]{}, err
	}
	return entity.NewPage(edges, req, total), nil
}

// CountSubscribers recomputes the count from the stored edges on every call.
func (uc *subscriptionUseCase) CountSubscribers(ctx context.Context, channelID string) (*entity.SubscriberCount, error) {
	if err := validateID(channelID, "channel"); err != nil {
		return nil, err
	}

	count, err := uc.aggregationRepo.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return &entity.SubscriberCount{ChannelID: channelID, SubscriberCount: count}, nil
}

func (uc *subscriptionUseCase) requireChannel(ctx context.Context, channelID string) error {
	if err := validateID(channelID, "channel"); err != nil {
		return err
	}
	exists, err := uc.profileRepo.Exists(ctx, channelID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Channel not found")
	}
	return nil
}
