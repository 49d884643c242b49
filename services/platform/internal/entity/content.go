package entity

import "time"

// Profile is the public snapshot of an identity attached to joined rows.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

type Video struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    int       `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Owner       *Profile  `json:"owner"`
}

func (v *Video) OwnedBy() string { return v.OwnerID }
func (v *Video) Kind() string    { return "video" }

// VisibleTo reports whether viewerID may see the video at all.
func (v *Video) VisibleTo(viewerID string) bool {
	return v.IsPublished || v.OwnerID == viewerID
}

type Tweet struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Owner     *Profile  `json:"owner"`
}

func (t *Tweet) OwnedBy() string { return t.OwnerID }
func (t *Tweet) Kind() string    { return "tweet" }

type Comment struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	OwnerID   string    `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Owner     *Profile  `json:"owner"`
}

func (c *Comment) OwnedBy() string { return c.OwnerID }
func (c *Comment) Kind() string    { return "comment" }

// WatchedVideo is a watch-history row: the video plus when it was last watched.
type WatchedVideo struct {
	Video
	WatchedAt time.Time `json:"watchedAt"`
}

// VideoDetail is one video as seen by a particular viewer.
type VideoDetail struct {
	Video
	IsLiked      bool `json:"isLiked"`
	IsSubscribed bool `json:"isSubscribed"`
}
