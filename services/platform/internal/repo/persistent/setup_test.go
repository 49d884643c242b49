package persistent

import (
	"context"
	"fmt"
	"testing"

	"vidtube/pkg/models"
	"vidtube/services/platform/internal/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every goroutine on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    fmt.Sprintf("%s@example.com", username),
		Username: username,
		FullName: "User " + username,
		Avatar:   "https://cdn.example.com/" + username + ".png",
		Password: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createVideo(t *testing.T, repo ContentRepository, ownerID, title string, published bool) *entity.Video {
	t.Helper()
	video := &entity.Video{
		OwnerID:     ownerID,
		Title:       title,
		VideoFile:   "https://cdn.example.com/v.mp4",
		Thumbnail:   "https://cdn.example.com/t.png",
		Duration:    42,
		IsPublished: published,
	}
	require.NoError(t, repo.CreateVideo(context.Background(), video))
	return video
}

func newID() string {
	return uuid.New().String()
}
