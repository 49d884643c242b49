package models

import (
	"time"

	"gorm.io/gorm"
)

type Video struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     string    `gorm:"type:uuid;not null;index:idx_videos_owner_created,priority:1" json:"owner_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `gorm:"not null" json:"video_file"`
	Thumbnail   string    `gorm:"not null" json:"thumbnail"`
	Duration    int       `gorm:"not null;check:chk_videos_duration,duration >= 0" json:"duration"`
	Views       int64     `gorm:"not null;check:chk_videos_views,views >= 0" json:"views"`
	IsPublished bool      `gorm:"not null" json:"is_published"`
	CreatedAt   time.Time `gorm:"index:idx_videos_owner_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = newID()
	}
	return nil
}

type Tweet struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tweet) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = newID()
	}
	return nil
}

// Comment keeps VideoID without a foreign key: comments may outlive their video.
type Comment struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	VideoID   string    `gorm:"type:uuid;not null;index:idx_comments_video_created,priority:1" json:"video_id"`
	OwnerID   string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `gorm:"index:idx_comments_video_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	return nil
}
