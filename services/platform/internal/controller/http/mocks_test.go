package http

import (
	"context"

	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockVideoUseCase is a mock implementation of VideoUseCase
type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) PublishVideo(ctx context.Context, actorID string, input usecase.CreateVideoInput) (*entity.Video, error) {
	args := m.Called(actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) GetVideo(ctx context.Context, viewerID, videoID string) (*entity.VideoDetail, error) {
	args := m.Called(viewerID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoDetail), args.Error(1)
}

func (m *MockVideoUseCase) ListVideos(ctx context.Context, viewerID string, query usecase.VideoQuery) (entity.Page[*entity.Video], error) {
	args := m.Called(viewerID, query)
	return args.Get(0).(entity.Page[*entity.Video]), args.Error(1)
}

func (m *MockVideoUseCase) ListChannelVideos(ctx context.Context, actorID string, page, limit int) (entity.Page[*entity.Video], error) {
	args := m.Called(actorID, page, limit)
	return args.Get(0).(entity.Page[*entity.Video]), args.Error(1)
}

func (m *MockVideoUseCase) UpdateVideo(ctx context.Context, actorID, videoID string, input usecase.UpdateVideoInput) (*entity.Video, error) {
	args := m.Called(actorID, videoID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) DeleteVideo(ctx context.Context, actorID, videoID string) error {
	args := m.Called(actorID, videoID)
	return args.Error(0)
}

func (m *MockVideoUseCase) TogglePublishStatus(ctx context.Context, actorID, videoID string) (*entity.Video, error) {
	args := m.Called(actorID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) RecordView(ctx context.Context, viewerID, videoID string) (bool, error) {
	args := m.Called(viewerID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoUseCase) ListWatchHistory(ctx context.Context, userID string, page, limit int) (entity.Page[*entity.WatchedVideo], error) {
	args := m.Called(userID, page, limit)
	return args.Get(0).(entity.Page[*entity.WatchedVideo]), args.Error(1)
}

var _ usecase.VideoUseCase = (*MockVideoUseCase)(nil)

type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleLike(ctx context.Context, actorID string, kind entity.LikeKind, targetID string) (*entity.ToggleResult, error) {
	args := m.Called(actorID, kind, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ToggleResult), args.Error(1)
}

func (m *MockLikeUseCase) ListLikedVideos(ctx context.Context, actorID string, page, limit int) (entity.Page[*entity.Video], error) {
	args := m.Called(actorID, page, limit)
	return args.Get(0).(entity.Page[*entity.Video]), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (*entity.ToggleResult, error) {
	args := m.Called(subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ToggleResult), args.Error(1)
}

func (m *MockSubscriptionUseCase) ListSubscribedChannels(ctx context.Context, subscriberID string, page, limit int) (entity.Page[*entity.SubscriptionEdge], error) {
	args := m.Called(subscriberID, page, limit)
	return args.Get(0).(entity.Page[*entity.SubscriptionEdge]), args.Error(1)
}

func (m *MockSubscriptionUseCase) ListSubscribers(ctx context.Context, channelID string, page, limit int) (entity.Page[*entity.SubscriptionEdge], error) {
	args := m.Called(channelID, page, limit)
	return args.Get(0).(entity.Page[*entity.SubscriptionEdge]), args.Error(1)
}

func (m *MockSubscriptionUseCase) CountSubscribers(ctx context.Context, channelID string) (*entity.SubscriberCount, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SubscriberCount), args.Error(1)
}

var _ usecase.SubscriptionUseCase = (*MockSubscriptionUseCase)(nil)

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListVideoComments(ctx context.Context, viewerID, videoID string, page, limit int) (entity.Page[*entity.Comment], error) {
	args := m.Called(viewerID, videoID, page, limit)
	return args.Get(0).(entity.Page[*entity.Comment]), args.Error(1)
}

func (m *MockCommentUseCase) AddComment(ctx context.Context, actorID, videoID, content string) (*entity.Comment, error) {
	args := m.Called(actorID, videoID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) UpdateComment(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error) {
	args := m.Called(actorID, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, actorID, commentID string) error {
	args := m.Called(actorID, commentID)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

type MockTweetUseCase struct {
	mock.Mock
}

func (m *MockTweetUseCase) CreateTweet(ctx context.Context, actorID, content string) (*entity.Tweet, error) {
	args := m.Called(actorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) ListUserTweets(ctx context.Context, userID string, page, limit int) (entity.Page[*entity.Tweet], error) {
	args := m.Called(userID, page, limit)
	return args.Get(0).(entity.Page[*entity.Tweet]), args.Error(1)
}

func (m *MockTweetUseCase) UpdateTweet(ctx context.Context, actorID, tweetID, content string) (*entity.Tweet, error) {
	args := m.Called(actorID, tweetID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) DeleteTweet(ctx context.Context, actorID, tweetID string) error {
	args := m.Called(actorID, tweetID)
	return args.Error(0)
}

var _ usecase.TweetUseCase = (*MockTweetUseCase)(nil)

type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) GetChannelStats(ctx context.Context, actorID string) (*entity.ChannelStats, error) {
	args := m.Called(actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelStats), args.Error(1)
}

func (m *MockDashboardUseCase) GetChannelVideos(ctx context.Context, actorID string, page, limit int) (entity.Page[*entity.Video], error) {
	args := m.Called(actorID, page, limit)
	return args.Get(0).(entity.Page[*entity.Video]), args.Error(1)
}

var _ usecase.DashboardUseCase = (*MockDashboardUseCase)(nil)
