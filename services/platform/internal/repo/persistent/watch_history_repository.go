package persistent

import (
	"context"
	"time"

	"vidtube/pkg/apperr"
	"vidtube/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchHistoryRepository interface {
	// Record inserts the (user, video) row or refreshes its watched_at.
	Record(ctx context.Context, userID, videoID string, watchedAt time.Time) error
}

type watchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

func (r *watchHistoryRepository) Record(ctx context.Context, userID, videoID string, watchedAt time.Time) error {
	entry := &models.WatchHistory{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: watchedAt,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
	}).Create(entry).Error
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}
