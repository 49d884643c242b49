package usecase

import (
	"context"
	"strings"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/repo/persistent"
)

type TweetUseCase interface {
	CreateTweet(ctx context.Context, actorID, content string) (*entity.Tweet, error)
	ListUserTweets(ctx context.Context, userID string, page, limit int) (entity.Page[*entity.Tweet], error)
	UpdateTweet(ctx context.Context, actorID, tweetID, content string) (*entity.Tweet, error)
	DeleteTweet(ctx context.Context, actorID, tweetID string) error
}

type tweetUseCase struct {
	contentRepo     persistent.ContentRepository
	aggregationRepo persistent.AggregationRepository
	profileRepo     persistent.ProfileRepository
	logger          *logger.Logger
}

func NewTweetUseCase(
	contentRepo persistent.ContentRepository,
	aggregationRepo persistent.AggregationRepository,
	profileRepo persistent.ProfileRepository,
	logger *logger.Logger,
) TweetUseCase {
	return &tweetUseCase{
		contentRepo:     contentRepo,
		aggregationRepo: aggregationRepo,
		profileRepo:     profileRepo,
		logger:          logger,
	}
}

func (uc *tweetUseCase) CreateTweet(ctx context.Context, actorID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.Validation("Tweet content is required")
	}

	tweet := &entity.Tweet{OwnerID: actorID, Content: content}
	if err := uc.contentRepo.CreateTweet(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (uc *tweetUseCase) ListUserTweets(ctx context.Context, userID string, page, limit int) (entity.Page[*entity.Tweet], error) {
	if err := validateID(userID, "user"); err != nil {
		return entity.Page[*entity.Tweet]{}, err
	}
	req, err := entity.NewPageRequest(page, limit)
	if err != nil {
		return entity.Page[*entity.Tweet]{}, err
	}

	exists, err := uc.profileRepo.Exists(ctx, userID)
	if err != nil {
		return entity.Page[*entity.Tweet]{}, err
	}
	if !exists {
		return entity.Page[*entity.Tweet]{}, apperr.NotFound("User not found")
	}

	tweets, total, err := uc.aggregationRepo.ListTweets(ctx, userID, req)
	if err != nil {
		return entity.Page[*entity.Tweet]{}, err
	}
	return entity.NewPage(tweets, req, total), nil
}

func (uc *tweetUseCase) UpdateTweet(ctx context.Context, actorID, tweetID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.Validation("Tweet content is required")
	}

	tweet, err := uc.ownedTweet(ctx, actorID, tweetID, "update")
	if err != nil {
		return nil, err
	}

	tweet.Content = content
	if err := uc.contentRepo.UpdateTweet(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (uc *tweetUseCase) DeleteTweet(ctx context.Context, actorID, tweetID string) error {
	tweet, err := uc.ownedTweet(ctx, actorID, tweetID, "delete")
	if err != nil {
		return err
	}
	return uc.contentRepo.DeleteTweet(ctx, tweet.ID, actorID)
}

func (uc *tweetUseCase) ownedTweet(ctx context.Context, actorID, tweetID, action string) (*entity.Tweet, error) {
	if err := validateID(tweetID, "tweet"); err != nil {
		return nil, err
	}

	tweet, err := uc.contentRepo.GetTweet(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actorID, tweet, action); err != nil {
		return nil, err
	}
	return tweet, nil
}
