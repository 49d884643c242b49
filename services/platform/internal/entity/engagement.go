package entity

import "time"

type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeComment LikeKind = "comment"
	LikeTweet   LikeKind = "tweet"
)

func (k LikeKind) Valid() bool {
	switch k {
	case LikeVideo, LikeComment, LikeTweet:
		return true
	}
	return false
}

type ToggleState string

const (
	ToggleAdded   ToggleState = "added"
	ToggleRemoved ToggleState = "removed"
)

type ToggleResult struct {
	State    ToggleState `json:"state"`
	TargetID string      `json:"targetId"`
}

// SubscriptionEdge is one side of a subscription, seen from the other side:
// a channel in a subscriber's list, or a subscriber in a channel's list.
type SubscriptionEdge struct {
	UserID       string    `json:"userId"`
	Profile      *Profile  `json:"profile"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type SubscriberCount struct {
	ChannelID       string `json:"channelId"`
	SubscriberCount int64  `json:"subscriberCount"`
}

type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}
