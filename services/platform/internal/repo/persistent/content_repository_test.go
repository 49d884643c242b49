package persistent

import (
	"context"
	"errors"
	"testing"

	"vidtube/pkg/apperr"
	"vidtube/services/platform/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRepository_VideoRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "owner")

	video := createVideo(t, repo, owner.ID, "T", true)
	assert.NotEmpty(t, video.ID)
	assert.False(t, video.CreatedAt.IsZero())

	got, err := repo.GetVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.True(t, got.IsPublished)

	require.NoError(t, repo.DeleteVideo(ctx, video.ID, owner.ID))

	_, err = repo.GetVideo(ctx, video.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestContentRepository_UpdateVideo_OnlyOwnerRowChanges(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "owner")

	video := createVideo(t, repo, owner.ID, "Original", true)

	hijack := *video
	hijack.OwnerID = newID()
	hijack.Title = "Hijacked"
	err := repo.UpdateVideo(ctx, &hijack)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	got, err := repo.GetVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title)

	video.Title = "Renamed"
	video.IsPublished = false
	require.NoError(t, repo.UpdateVideo(ctx, video))

	got, err = repo.GetVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.False(t, got.IsPublished)
}

func TestContentRepository_DeleteWrongOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "owner")

	tweet := &entity.Tweet{OwnerID: owner.ID, Content: "hello"}
	require.NoError(t, repo.CreateTweet(ctx, tweet))

	err := repo.DeleteTweet(ctx, tweet.ID, newID())
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	got, err := repo.GetTweet(ctx, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)
}

func TestContentRepository_IncrementViews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "owner")
	video := createVideo(t, repo, owner.ID, "T", true)

	require.NoError(t, repo.IncrementViews(ctx, video.ID))
	require.NoError(t, repo.IncrementViews(ctx, video.ID))

	got, err := repo.GetVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Views)

	err = repo.IncrementViews(ctx, newID())
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestContentRepository_CommentOutlivesVideo(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "owner")
	video := createVideo(t, repo, owner.ID, "T", true)

	comment := &entity.Comment{VideoID: video.ID, OwnerID: owner.ID, Content: "first"}
	require.NoError(t, repo.CreateComment(ctx, comment))
	require.NoError(t, repo.DeleteVideo(ctx, video.ID, owner.ID))

	got, err := repo.GetComment(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, video.ID, got.VideoID)

	got.Content = "edited"
	require.NoError(t, repo.UpdateComment(ctx, got))
	require.NoError(t, repo.DeleteComment(ctx, got.ID, owner.ID))
}
