package usecase

import (
	"context"
	"errors"
	"testing"

	"vidtube/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentScenario(t *testing.T) {
	env := setupTestEnv(t)
	uc := NewCommentUseCase(env.content, env.aggregation, env.log)
	ctx := context.Background()
	ownerID := env.createUser(t, "owner")
	authorID := env.createUser(t, "author")
	otherID := env.createUser(t, "other")
	video := env.createVideo(t, ownerID, "V", true)

	_, err := uc.AddComment(ctx, otherID, video.ID, "older")
	require.NoError(t, err)

	comment, err := uc.AddComment(ctx, authorID, video.ID, "nice")
	require.NoError(t, err)

	page, err := uc.ListVideoComments(ctx, otherID, video.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Docs, 2)
	assert.Equal(t, comment.ID, page.Docs[0].ID)
	assert.Equal(t, "nice", page.Docs[0].Content)
	assert.Equal(t, "author", page.Docs[0].Owner.Username)

	_, err = uc.UpdateComment(ctx, authorID, comment.ID, "nicer")
	require.NoError(t, err)

	_, err = uc.UpdateComment(ctx, otherID, comment.ID, "hijacked")
	assert.True(t, errors.Is(err, apperr.ErrForbidden))

	err = uc.DeleteComment(ctx, otherID, comment.ID)
	assert.True(t, errors.Is(err, apperr.ErrForbidden))

	page, err = uc.ListVideoComments(ctx, otherID, video.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "nicer", page.Docs[0].Content)

	require.NoError(t, uc.DeleteComment(ctx, authorID, comment.ID))
	page, err = uc.ListVideoComments(ctx, otherID, video.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Docs, 1)
}

func TestAddComment_Validation(t *testing.T) {
	env := setupTestEnv(t)
	uc := NewCommentUseCase(env.content, env.aggregation, env.log)
	ctx := context.Background()
	ownerID := env.createUser(t, "owner")
	video := env.createVideo(t, ownerID, "V", true)
	draft := env.createVideo(t, ownerID, "Draft", false)

	_, err := uc.AddComment(ctx, ownerID, video.ID, "   ")
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = uc.AddComment(ctx, ownerID, "bad-id", "hi")
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = uc.AddComment(ctx, ownerID, uuid.New().String(), "hi")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = uc.AddComment(ctx, env.createUser(t, "stranger"), draft.ID, "hi")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = uc.ListVideoComments(ctx, ownerID, video.ID, 0, 10)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestComment_SurvivesVideoDeletion(t *testing.T) {
	env := setupTestEnv(t)
	uc := NewCommentUseCase(env.content, env.aggregation, env.log)
	ctx := context.Background()
	ownerID := env.createUser(t, "owner")
	video := env.createVideo(t, ownerID, "V", true)

	comment, err := uc.AddComment(ctx, ownerID, video.ID, "still here")
	require.NoError(t, err)
	require.NoError(t, env.content.DeleteVideo(ctx, video.ID, ownerID))

	page, err := uc.ListVideoComments(ctx, env.createUser(t, "reader"), video.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, comment.ID, page.Docs[0].ID)
	assert.Equal(t, int64(1), page.TotalDocs)

	updated, err := uc.UpdateComment(ctx, ownerID, comment.ID, "orphaned")
	require.NoError(t, err)
	assert.Equal(t, "orphaned", updated.Content)
}
