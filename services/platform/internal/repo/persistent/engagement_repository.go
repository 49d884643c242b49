package persistent

import (
	"context"
	"time"

	"vidtube/pkg/apperr"
	"vidtube/pkg/models"
	"vidtube/services/platform/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxToggleAttempts bounds the delete/insert loop when concurrent toggles
// keep flipping the same edge underneath us.
const maxToggleAttempts = 5

// EngagementRepository flips like and subscription edges. Each successful
// toggle performs exactly one transition; the unique indexes on the edge
// keys keep at most one edge per key.
type EngagementRepository interface {
	ToggleLike(ctx context.Context, likedBy string, kind entity.LikeKind, targetID string) (entity.ToggleState, error)
	ToggleSubscription(ctx context.Context, subscriberID, channelID string) (entity.ToggleState, error)
	IsLiked(ctx context.Context, likedBy string, kind entity.LikeKind, targetID string) (bool, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) ToggleLike(ctx context.Context, likedBy string, kind entity.LikeKind, targetID string) (entity.ToggleState, error) {
	db := r.db.WithContext(ctx)
	return toggle(
		func() (int64, error) {
			result := db.Where("liked_by = ? AND target_kind = ? AND target_id = ?", likedBy, string(kind), targetID).
				Delete(&models.Like{})
			return result.RowsAffected, result.Error
		},
		func() (int64, error) {
			like := &models.Like{
				LikedBy:    likedBy,
				TargetKind: string(kind),
				TargetID:   targetID,
				CreatedAt:  time.Now(),
			}
			result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
			return result.RowsAffected, result.Error
		},
	)
}

func (r *engagementRepository) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (entity.ToggleState, error) {
	db := r.db.WithContext(ctx)
	return toggle(
		func() (int64, error) {
			result := db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
				Delete(&models.Subscription{})
			return result.RowsAffected, result.Error
		},
		func() (int64, error) {
			subscription := &models.Subscription{
				SubscriberID: subscriberID,
				ChannelID:    channelID,
				CreatedAt:    time.Now(),
			}
			result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(subscription)
			return result.RowsAffected, result.Error
		},
	)
}

func (r *engagementRepository) IsLiked(ctx context.Context, likedBy string, kind entity.LikeKind, targetID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", likedBy, string(kind), targetID).
		Count(&count).Error
	if err != nil {
		return false, apperr.Internal(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	if err != nil {
		return false, apperr.Internal(err)
	}
	return count > 0, nil
}

// toggle removes the edge if one exists, otherwise inserts it. Both steps
// are single atomic statements; when a concurrent toggle slips between them
// (our delete saw nothing, our insert hit the unique key) the loop starts
// over instead of reporting a transition that did not happen.
func toggle(remove, insert func() (int64, error)) (entity.ToggleState, error) {
	for attempt := 0; attempt < maxToggleAttempts; attempt++ {
		removed, err := remove()
		if err != nil {
			return "", apperr.Internal(err)
		}
		if removed > 0 {
			return entity.ToggleRemoved, nil
		}

		inserted, err := insert()
		if err != nil {
			return "", apperr.Internal(err)
		}
		if inserted > 0 {
			return entity.ToggleAdded, nil
		}
	}
	return "", apperr.Conflict("Too many concurrent changes, please retry")
}
