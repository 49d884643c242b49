package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"vidtube/pkg/logger"
	"vidtube/pkg/models"
	"vidtube/pkg/queue"
	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/repo/persistent"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockUploader) DeleteByURL(ctx context.Context, url string) error {
	args := m.Called(url)
	return args.Error(0)
}

type MockViewMarker struct {
	mock.Mock
}

func (m *MockViewMarker) MarkViewed(ctx context.Context, viewerID, videoID string) (bool, error) {
	args := m.Called(viewerID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockViewMarker) ClearViewed(ctx context.Context, viewerID, videoID string) error {
	args := m.Called(viewerID, videoID)
	return args.Error(0)
}

type fakePublisher struct {
	events chan queue.Event
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{events: make(chan queue.Event, 16)}
}

func (p *fakePublisher) Publish(ctx context.Context, event queue.Event) error {
	p.events <- event
	return nil
}

type testEnv struct {
	db          *gorm.DB
	content     persistent.ContentRepository
	engagement  persistent.EngagementRepository
	aggregation persistent.AggregationRepository
	profiles    persistent.ProfileRepository
	history     persistent.WatchHistoryRepository
	log         *logger.Logger
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))

	return &testEnv{
		db:          db,
		content:     persistent.NewContentRepository(db),
		engagement:  persistent.NewEngagementRepository(db),
		aggregation: persistent.NewAggregationRepository(db),
		profiles:    persistent.NewProfileRepository(db),
		history:     persistent.NewWatchHistoryRepository(db),
		log:         logger.NewWithOptions(logger.Options{Level: "error", Output: io.Discard}),
	}
}

func (e *testEnv) createUser(t *testing.T, username string) string {
	t.Helper()
	user := &models.User{
		Email:    fmt.Sprintf("%s@example.com", username),
		Username: username,
		FullName: strings.ToUpper(username),
		Password: "hash",
	}
	require.NoError(t, e.db.Create(user).Error)
	return user.ID
}

func (e *testEnv) createVideo(t *testing.T, ownerID, title string, published bool) *entity.Video {
	t.Helper()
	video := &entity.Video{
		OwnerID:     ownerID,
		Title:       title,
		VideoFile:   "https://cdn.example.com/" + title + ".mp4",
		Thumbnail:   "https://cdn.example.com/" + title + ".png",
		IsPublished: published,
	}
	require.NoError(t, e.content.CreateVideo(context.Background(), video))
	return video
}

func mediaFile(name, contentType string) *MediaFile {
	return &MediaFile{Filename: name, ContentType: contentType, Body: bytes.NewReader([]byte("data"))}
}
