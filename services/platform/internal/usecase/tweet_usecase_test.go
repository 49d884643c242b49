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

func TestTweetLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	uc := NewTweetUseCase(env.content, env.aggregation, env.profiles, env.log)
	ctx := context.Background()
	ownerID := env.createUser(t, "owner")
	otherID := env.createUser(t, "other")

	tweet, err := uc.CreateTweet(ctx, ownerID, "  hello world ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", tweet.Content)

	_, err = uc.UpdateTweet(ctx, otherID, tweet.ID, "hijacked")
	assert.True(t, errors.Is(err, apperr.ErrForbidden))

	updated, err := uc.UpdateTweet(ctx, ownerID, tweet.ID, "hello again")
	require.NoError(t, err)
	assert.Equal(t, "hello again", updated.Content)

	page, err := uc.ListUserTweets(ctx, ownerID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, "hello again", page.Docs[0].Content)
	assert.Equal(t, "owner", page.Docs[0].Owner.Username)

	assert.True(t, errors.Is(uc.DeleteTweet(ctx, otherID, tweet.ID), apperr.ErrForbidden))
	require.NoError(t, uc.DeleteTweet(ctx, ownerID, tweet.ID))

	page, err = uc.ListUserTweets(ctx, ownerID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Docs)
}

func TestTweet_Validation(t *testing.T) {
	env := setupTestEnv(t)
	uc := NewTweetUseCase(env.content, env.aggregation, env.profiles, env.log)
	ctx := context.Background()
	ownerID := env.createUser(t, "owner")

	_, err := uc.CreateTweet(ctx, ownerID, " ")
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = uc.ListUserTweets(ctx, "nope", 1, 10)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = uc.ListUserTweets(ctx, uuid.New().String(), 1, 10)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = uc.UpdateTweet(ctx, ownerID, uuid.New().String(), "x")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
