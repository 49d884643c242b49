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

type LikeUseCase interface {
	ToggleLike(ctx context.Context, actorID string, kind entity.LikeKind, targetID string) (*entity.ToggleResult, error)
	ListLikedVideos(ctx context.Context, actorID string, page, limit int) (entity.Page[*entity.Video], error)
}

type likeUseCase struct {
	contentRepo     persistent.ContentRepository
	engagementRepo  persistent.EngagementRepository
	aggregationRepo persistent.AggregationRepository
	publisher       EventPublisher
	logger          *logger.Logger
}

func NewLikeUseCase(
	contentRepo persistent.ContentRepository,
	engagementRepo persistent.EngagementRepository,
	aggregationRepo persistent.AggregationRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		contentRepo:     contentRepo,
		engagementRepo:  engagementRepo,
		aggregationRepo: aggregationRepo,
		publisher:       publisher,
		logger:          logger,
	}
}

func (uc *likeUseCase) ToggleLike(ctx context.Context, actorID string, kind entity.LikeKind, targetID string) (*entity.ToggleResult, error) {
	if !kind.Valid() {
		return nil, apperr.Validation("Invalid like target")
	}
	if err := validateID(targetID, string(kind)); err != nil {
		return nil, err
	}

	// An existing like can always be removed, even after its target was
	// unpublished or deleted. Only adding requires a reachable target.
	liked, err := uc.engagementRepo.IsLiked(ctx, actorID, kind, targetID)
	if err != nil {
		return nil, err
	}

	ownerID := ""
	if !liked {
		if ownerID, err = uc.targetOwner(ctx, actorID, kind, targetID); err != nil {
			return nil, err
		}
	}

	state, err := uc.engagementRepo.ToggleLike(ctx, actorID, kind, targetID)
	if err != nil {
		return nil, err
	}

	// A concurrent unlike removed the edge first, so this call added it
	// without the target check.
	if liked && state == entity.ToggleAdded {
		if ownerID, err = uc.targetOwner(ctx, actorID, kind, targetID); err != nil {
			if _, undoErr := uc.engagementRepo.ToggleLike(ctx, actorID, kind, targetID); undoErr != nil {
				uc.logger.Error("Failed to undo like on unreachable %s %s: %v", kind, targetID, undoErr)
			}
			return nil, err
		}
	}
	metrics.ObserveToggle("like_"+string(kind), string(state))

	if state == entity.ToggleAdded && ownerID != actorID {
		publishAsync(uc.publisher, uc.logger, queue.Event{
			Type:       queue.EventLikeAdded,
			ActorID:    actorID,
			TargetKind: string(kind),
			TargetID:   targetID,
			OwnerID:    ownerID,
			OccurredAt: time.Now().UTC(),
		})
	}

	return &entity.ToggleResult{State: state, TargetID: targetID}, nil
}

func (uc *likeUseCase) ListLikedVideos(ctx context.Context, actorID string, page, limit int) (entity.Page[*entity.Video], error) {
	req, err := entity.NewPageRequest(page, limit)
	if err != nil {
		return entity.Page[*entity.Video]{}, err
	}

	videos, total, err := uc.aggregationRepo.ListLikedVideos(ctx, actorID, req)
	if err != nil {
		return entity.Page[*entity.Video]{}, err
	}
	return entity.NewPage(videos, req, total), nil
}

// targetOwner checks that the like target exists (and, for videos, is
// visible to the actor) and returns its owner.
func (uc *likeUseCase) targetOwner(ctx context.Context, actorID string, kind entity.LikeKind, targetID string) (string, error) {
	switch kind {
	case entity.LikeVideo:
		video, err := uc.contentRepo.GetVideo(ctx, targetID)
		if err != nil {
			return "", err
		}
		if !video.VisibleTo(actorID) {
			return "", apperr.NotFound("Video not found")
		}
		return video.OwnerID, nil
	case entity.LikeComment:
		comment, err := uc.contentRepo.GetComment(ctx, targetID)
		if err != nil {
			return "", err
		}
		return comment.OwnerID, nil
	default:
		tweet, err := uc.contentRepo.GetTweet(ctx, targetID)
		if err != nil {
			return "", err
		}
		return tweet.OwnerID, nil
	}
}
