package http

import "github.com/gin-gonic/gin"

type Handlers struct {
	Video        *VideoHandler
	Tweet        *TweetHandler
	Comment      *CommentHandler
	Like         *LikeHandler
	Subscription *SubscriptionHandler
	Dashboard    *DashboardHandler
}

// RegisterRoutes mounts every endpoint on api. Authentication is expected
// to be installed on the group already.
func RegisterRoutes(api *gin.RouterGroup, h Handlers) {
	videos := api.Group("/videos")
	{
		videos.POST("", h.Video.PublishVideo)
		videos.GET("", h.Video.GetAllVideos)
		videos.GET("/channel", h.Video.GetChannelVideos)
		videos.GET("/:id", h.Video.GetVideoByID)
		videos.PATCH("/:id", h.Video.UpdateVideo)
		videos.DELETE("/:id", h.Video.DeleteVideo)
		videos.PATCH("/:id/publish", h.Video.TogglePublishStatus)
		videos.POST("/:id/view", h.Video.RecordView)
	}

	api.GET("/users/watch-history", h.Video.GetWatchHistory)

	tweets := api.Group("/tweets")
	{
		tweets.POST("", h.Tweet.CreateTweet)
		tweets.GET("/user/:id", h.Tweet.GetUserTweets)
		tweets.GET("/user-tweets", h.Tweet.GetMyTweets)
		tweets.PATCH("/:id", h.Tweet.UpdateTweet)
		tweets.DELETE("/:id", h.Tweet.DeleteTweet)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:videoId", h.Comment.GetVideoComments)
		comments.POST("/:videoId", h.Comment.AddComment)
		comments.PATCH("/c/:id", h.Comment.UpdateComment)
		comments.DELETE("/c/:id", h.Comment.DeleteComment)
	}

	likes := api.Group("/likes")
	{
		likes.POST("/toggle/v/:videoId", h.Like.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", h.Like.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", h.Like.ToggleTweetLike)
		likes.GET("/videos", h.Like.GetLikedVideos)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/c/:channelId", h.Subscription.ToggleSubscription)
		subscriptions.GET("/c/:channelId", h.Subscription.GetSubscribedChannels)
		subscriptions.GET("/subscribed-channels", h.Subscription.GetMySubscribedChannels)
		subscriptions.GET("/subscribers/:channelId", h.Subscription.GetChannelSubscribers)
		subscriptions.GET("/count/:channelId", h.Subscription.GetSubscriberCount)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Dashboard.GetChannelStats)
		dashboard.GET("/videos", h.Dashboard.GetChannelVideos)
	}
}
