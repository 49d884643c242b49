package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Like points at exactly one target through (TargetKind, TargetID).
type Like struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	LikedBy    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_key,priority:1" json:"liked_by"`
	TargetKind string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_likes_key,priority:2;index:idx_likes_target,priority:1;check:chk_likes_target_kind,target_kind IN ('video','comment','tweet')" json:"target_kind"`
	TargetID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_key,priority:3;index:idx_likes_target,priority:2" json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = newID()
	}
	return nil
}

type Subscription struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	SubscriberID string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair,priority:1" json:"subscriber_id"`
	ChannelID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair,priority:2;index" json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = newID()
	}
	return nil
}

type WatchHistory struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_watch_history_pair,priority:1" json:"user_id"`
	VideoID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_watch_history_pair,priority:2" json:"video_id"`
	WatchedAt time.Time `gorm:"not null;index" json:"watched_at"`
}

func (WatchHistory) TableName() string {
	return "watch_history"
}

func (w *WatchHistory) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = newID()
	}
	return nil
}

// All lists every model in migration order; used by tests and the seeder.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Video{},
		&Tweet{},
		&Comment{},
		&Like{},
		&Subscription{},
		&WatchHistory{},
	}
}
