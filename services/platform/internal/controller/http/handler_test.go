package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/pkg/middleware"
	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-123"

type mocks struct {
	video        *MockVideoUseCase
	tweet        *MockTweetUseCase
	comment      *MockCommentUseCase
	like         *MockLikeUseCase
	subscription *MockSubscriptionUseCase
	dashboard    *MockDashboardUseCase
}

func setupTestRouter() (*gin.Engine, *mocks) {
	gin.SetMode(gin.TestMode)
	log := logger.NewWithOptions(logger.Options{Level: "error", Output: io.Discard})

	m := &mocks{
		video:        new(MockVideoUseCase),
		tweet:        new(MockTweetUseCase),
		comment:      new(MockCommentUseCase),
		like:         new(MockLikeUseCase),
		subscription: new(MockSubscriptionUseCase),
		dashboard:    new(MockDashboardUseCase),
	}

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, testUserID)
		c.Next()
	})
	RegisterRoutes(api, Handlers{
		Video:        NewVideoHandler(m.video, log),
		Tweet:        NewTweetHandler(m.tweet, log),
		Comment:      NewCommentHandler(m.comment, log),
		Like:         NewLikeHandler(m.like, log),
		Subscription: NewSubscriptionHandler(m.subscription, log),
		Dashboard:    NewDashboardHandler(m.dashboard, log),
	})
	return router, m
}

func perform(router *gin.Engine, method, path string, body io.Reader, contentType string) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	return w, response
}

func TestGetVideoByID_Success(t *testing.T) {
	router, m := setupTestRouter()
	video := &entity.VideoDetail{
		Video:   entity.Video{ID: "video-1", OwnerID: "owner-1", Title: "T", IsPublished: true},
		IsLiked: true,
	}
	m.video.On("GetVideo", testUserID, "video-1").Return(video, nil)

	w, response := perform(router, "GET", "/api/v1/videos/video-1", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(200), response["statusCode"])
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Video fetched successfully", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "T", data["title"])
	assert.Nil(t, data["owner"])
	assert.Equal(t, true, data["isLiked"])
	assert.Equal(t, false, data["isSubscribed"])
	m.video.AssertExpectations(t)
}

func TestGetVideoByID_NotFound(t *testing.T) {
	router, m := setupTestRouter()
	m.video.On("GetVideo", testUserID, "missing").Return(nil, apperr.NotFound("Video not found"))

	w, response := perform(router, "GET", "/api/v1/videos/missing", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(404), response["statusCode"])
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Video not found", response["message"])
	assert.NotContains(t, response, "data")
}

func TestGetChannelVideos_RoutesToChannelHandler(t *testing.T) {
	router, m := setupTestRouter()
	page := entity.NewPage[*entity.Video](nil, entity.PageRequest{Page: 1, Limit: 10}, 0)
	m.video.On("ListChannelVideos", testUserID, 1, 10).Return(page, nil)

	w, response := perform(router, "GET", "/api/v1/videos/channel", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{}, data["docs"])
	assert.Equal(t, false, data["hasMore"])
	assert.Equal(t, float64(0), data["totalDocs"])
	m.video.AssertNotCalled(t, "GetVideo", mock.Anything, mock.Anything)
}

func TestGetAllVideos_PassesQuery(t *testing.T) {
	router, m := setupTestRouter()
	query := usecase.VideoQuery{Query: "go", OwnerID: "owner-1", SortBy: "views", SortType: "asc", Page: 2, Limit: 5}
	page := entity.NewPage([]*entity.Video{{ID: "v"}}, entity.PageRequest{Page: 2, Limit: 5}, 11)
	m.video.On("ListVideos", testUserID, query).Return(page, nil)

	w, response := perform(router, "GET", "/api/v1/videos?page=2&limit=5&query=go&sortBy=views&sortType=asc&userId=owner-1", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["page"])
	assert.Equal(t, true, data["hasMore"])
	m.video.AssertExpectations(t)
}

func TestGetAllVideos_InvalidPage(t *testing.T) {
	router, m := setupTestRouter()

	w, response := perform(router, "GET", "/api/v1/videos?page=abc", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid page number", response["message"])
	m.video.AssertNotCalled(t, "ListVideos", mock.Anything, mock.Anything)
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for field, name := range files {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		part.Write([]byte("binary"))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestPublishVideo_Success(t *testing.T) {
	router, m := setupTestRouter()
	body, contentType := multipartBody(t,
		map[string]string{"title": "My video", "description": "d", "duration": "12"},
		map[string]string{"videoFile": "clip.mp4", "thumbnail": "thumb.png"},
	)

	m.video.On("PublishVideo", testUserID, mock.MatchedBy(func(in usecase.CreateVideoInput) bool {
		return in.Title == "My video" && in.Duration == 12 &&
			in.VideoFile != nil && in.VideoFile.Filename == "clip.mp4" &&
			in.Thumbnail != nil && in.Thumbnail.Filename == "thumb.png"
	})).Return(&entity.Video{ID: "v1", Title: "My video"}, nil)

	w, response := perform(router, "POST", "/api/v1/videos", body, contentType)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(201), response["statusCode"])
	assert.Equal(t, "Video published successfully", response["message"])
	m.video.AssertExpectations(t)
}

func TestPublishVideo_InvalidDuration(t *testing.T) {
	router, m := setupTestRouter()
	body, contentType := multipartBody(t, map[string]string{"title": "T", "duration": "long"}, nil)

	w, _ := perform(router, "POST", "/api/v1/videos", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.video.AssertNotCalled(t, "PublishVideo", mock.Anything, mock.Anything)
}

func TestPublishVideo_UpstreamFailureHidesCause(t *testing.T) {
	router, m := setupTestRouter()
	body, contentType := multipartBody(t, map[string]string{"title": "T"}, map[string]string{"videoFile": "a.mp4", "thumbnail": "a.png"})
	m.video.On("PublishVideo", testUserID, mock.Anything).
		Return(nil, apperr.UpstreamFailure("upload failed", errors.New("s3: AccessDenied for key videos/x")))

	w, response := perform(router, "POST", "/api/v1/videos", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "upload failed", response["message"])
	assert.NotContains(t, w.Body.String(), "AccessDenied")
}

func TestUpdateVideo_Forbidden(t *testing.T) {
	router, m := setupTestRouter()
	body, contentType := multipartBody(t, map[string]string{"title": "New"}, nil)
	m.video.On("UpdateVideo", testUserID, "v1", mock.MatchedBy(func(in usecase.UpdateVideoInput) bool {
		return in.Title != nil && *in.Title == "New" && in.Description == nil && in.Thumbnail == nil
	})).Return(nil, apperr.Forbidden("You are not authorized to update this video"))

	w, response := perform(router, "PATCH", "/api/v1/videos/v1", body, contentType)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You are not authorized to update this video", response["message"])
	m.video.AssertExpectations(t)
}

func TestDeleteVideo_InternalErrorIsGeneric(t *testing.T) {
	router, m := setupTestRouter()
	m.video.On("DeleteVideo", testUserID, "v1").Return(errors.New("pq: connection refused"))

	w, response := perform(router, "DELETE", "/api/v1/videos/v1", nil, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", response["message"])
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestRecordView(t *testing.T) {
	router, m := setupTestRouter()
	m.video.On("RecordView", testUserID, "v1").Return(true, nil)

	w, response := perform(router, "POST", "/api/v1/videos/v1/view", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, response["data"].(map[string]interface{})["counted"])
}

func TestToggleLike_Messages(t *testing.T) {
	router, m := setupTestRouter()
	m.like.On("ToggleLike", testUserID, entity.LikeVideo, "v1").
		Return(&entity.ToggleResult{State: entity.ToggleAdded, TargetID: "v1"}, nil).Once()
	m.like.On("ToggleLike", testUserID, entity.LikeVideo, "v1").
		Return(&entity.ToggleResult{State: entity.ToggleRemoved, TargetID: "v1"}, nil).Once()
	m.like.On("ToggleLike", testUserID, entity.LikeTweet, "t1").
		Return(&entity.ToggleResult{State: entity.ToggleAdded, TargetID: "t1"}, nil)

	w, response := perform(router, "POST", "/api/v1/likes/toggle/v/v1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Video liked", response["message"])
	assert.Equal(t, "added", response["data"].(map[string]interface{})["state"])

	_, response = perform(router, "POST", "/api/v1/likes/toggle/v/v1", nil, "")
	assert.Equal(t, "Video unliked", response["message"])

	_, response = perform(router, "POST", "/api/v1/likes/toggle/t/t1", nil, "")
	assert.Equal(t, "Tweet liked", response["message"])

	m.like.AssertExpectations(t)
}

func TestToggleLike_Conflict(t *testing.T) {
	router, m := setupTestRouter()
	m.like.On("ToggleLike", testUserID, entity.LikeComment, "c1").
		Return(nil, apperr.Conflict("Too many concurrent changes, please retry"))

	w, _ := perform(router, "POST", "/api/v1/likes/toggle/c/c1", nil, "")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestToggleSubscription_StatusCodes(t *testing.T) {
	router, m := setupTestRouter()
	m.subscription.On("ToggleSubscription", testUserID, "ch1").
		Return(&entity.ToggleResult{State: entity.ToggleAdded, TargetID: "ch1"}, nil).Once()
	m.subscription.On("ToggleSubscription", testUserID, "ch1").
		Return(&entity.ToggleResult{State: entity.ToggleRemoved, TargetID: "ch1"}, nil).Once()

	w, response := perform(router, "POST", "/api/v1/subscriptions/c/ch1", nil, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Subscribed successfully", response["message"])

	w, response = perform(router, "POST", "/api/v1/subscriptions/c/ch1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Unsubscribed successfully", response["message"])
}

func TestSubscriptionReads(t *testing.T) {
	router, m := setupTestRouter()
	empty := entity.NewPage[*entity.SubscriptionEdge](nil, entity.PageRequest{Page: 1, Limit: 10}, 0)
	m.subscription.On("ListSubscribedChannels", "sub-1", 1, 10).Return(empty, nil)
	m.subscription.On("ListSubscribedChannels", testUserID, 1, 10).Return(empty, nil)
	m.subscription.On("ListSubscribers", "ch1", 1, 10).Return(empty, nil)
	m.subscription.On("CountSubscribers", "ch1").Return(&entity.SubscriberCount{ChannelID: "ch1", SubscriberCount: 3}, nil)

	for _, path := range []string{
		"/api/v1/subscriptions/c/sub-1",
		"/api/v1/subscriptions/subscribed-channels",
		"/api/v1/subscriptions/subscribers/ch1",
	} {
		w, _ := perform(router, "GET", path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	_, response := perform(router, "GET", "/api/v1/subscriptions/count/ch1", nil, "")
	assert.Equal(t, float64(3), response["data"].(map[string]interface{})["subscriberCount"])
	m.subscription.AssertExpectations(t)
}

func TestSubscriptionChannelRoutesShareParam(t *testing.T) {
	router, _ := setupTestRouter()

	methods := map[string]bool{}
	for _, r := range router.Routes() {
		if r.Path == "/api/v1/subscriptions/c/:channelId" {
			methods[r.Method] = true
		}
		assert.NotContains(t, r.Path, "/subscriptions/c/:subscriberId")
	}
	assert.Equal(t, map[string]bool{"GET": true, "POST": true}, methods)
}

func TestComments(t *testing.T) {
	router, m := setupTestRouter()
	m.comment.On("AddComment", testUserID, "v1", "nice").
		Return(&entity.Comment{ID: "c1", VideoID: "v1", OwnerID: testUserID, Content: "nice"}, nil)
	m.comment.On("UpdateComment", testUserID, "c1", "nicer").
		Return(nil, apperr.Forbidden("You are not authorized to update this comment"))

	w, response := perform(router, "POST", "/api/v1/comments/v1", bytes.NewBufferString(`{"content":"nice"}`), "application/json")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Comment added successfully", response["message"])

	w, _ = perform(router, "PATCH", "/api/v1/comments/c/c1", bytes.NewBufferString(`{"content":"nicer"}`), "application/json")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = perform(router, "POST", "/api/v1/comments/v1", bytes.NewBufferString(`{bad json`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.comment.AssertExpectations(t)
}

func TestTweets(t *testing.T) {
	router, m := setupTestRouter()
	page := entity.NewPage[*entity.Tweet](nil, entity.PageRequest{Page: 1, Limit: 10}, 0)
	m.tweet.On("CreateTweet", testUserID, "hello").Return(&entity.Tweet{ID: "t1", Content: "hello"}, nil)
	m.tweet.On("ListUserTweets", "someone", 1, 10).Return(page, nil)
	m.tweet.On("ListUserTweets", testUserID, 1, 10).Return(page, nil)
	m.tweet.On("DeleteTweet", testUserID, "t1").Return(nil)

	w, _ := perform(router, "POST", "/api/v1/tweets", bytes.NewBufferString(`{"content":"hello"}`), "application/json")
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = perform(router, "GET", "/api/v1/tweets/user/someone", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = perform(router, "GET", "/api/v1/tweets/user-tweets", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, response := perform(router, "DELETE", "/api/v1/tweets/t1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tweet deleted successfully", response["message"])
	m.tweet.AssertExpectations(t)
}

func TestDashboardStats(t *testing.T) {
	router, m := setupTestRouter()
	m.dashboard.On("GetChannelStats", testUserID).
		Return(&entity.ChannelStats{TotalVideos: 2, TotalViews: 40, TotalSubscribers: 3, TotalLikes: 5}, nil)

	w, response := perform(router, "GET", "/api/v1/dashboard/stats", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Channel stats fetched successfully", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(40), data["totalViews"])
	assert.Equal(t, float64(5), data["totalLikes"])
}

func TestPaging_LimitValidationDelegated(t *testing.T) {
	router, m := setupTestRouter()
	m.dashboard.On("GetChannelVideos", testUserID, 1, 0).
		Return(entity.Page[*entity.Video]{}, apperr.Validation("Limit must be a positive integer"))

	w, response := perform(router, "GET", "/api/v1/dashboard/videos?limit=0", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Limit must be a positive integer", response["message"])
}
