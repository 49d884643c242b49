package persistent

import (
	"context"
	"time"

	"vidtube/pkg/apperr"
	"vidtube/pkg/models"
	"vidtube/services/platform/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentRepository stores videos, tweets and comments. Updates and deletes
// are conditional on the owner so a write can never land on someone else's
// record, whatever the caller checked beforehand.
type ContentRepository interface {
	CreateVideo(ctx context.Context, video *entity.Video) error
	GetVideo(ctx context.Context, id string) (*entity.Video, error)
	UpdateVideo(ctx context.Context, video *entity.Video) error
	DeleteVideo(ctx context.Context, id, ownerID string) error
	IncrementViews(ctx context.Context, id string) error

	CreateTweet(ctx context.Context, tweet *entity.Tweet) error
	GetTweet(ctx context.Context, id string) (*entity.Tweet, error)
	UpdateTweet(ctx context.Context, tweet *entity.Tweet) error
	DeleteTweet(ctx context.Context, id, ownerID string) error

	CreateComment(ctx context.Context, comment *entity.Comment) error
	GetComment(ctx context.Context, id string) (*entity.Comment, error)
	UpdateComment(ctx context.Context, comment *entity.Comment) error
	DeleteComment(ctx context.Context, id, ownerID string) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) CreateVideo(ctx context.Context, video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.WithContext(ctx).Create(videoModel).Error; err != nil {
		return apperr.Internal(err)
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *contentRepository) GetVideo(ctx context.Context, id string) (*entity.Video, error) {
	var videoModel models.Video
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, translate(err, "Video not found")
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *contentRepository) UpdateVideo(ctx context.Context, video *entity.Video) error {
	video.UpdatedAt = time.Now()
	return r.conditionalUpdate(ctx, &models.Video{}, video.ID, video.OwnerID, map[string]interface{}{
		"title":        video.Title,
		"description":  video.Description,
		"thumbnail":    video.Thumbnail,
		"is_published": video.IsPublished,
		"updated_at":   video.UpdatedAt,
	}, "Video not found")
}

func (r *contentRepository) DeleteVideo(ctx context.Context, id, ownerID string) error {
	return r.conditionalDelete(ctx, &models.Video{}, id, ownerID, "Video not found")
}

func (r *contentRepository) IncrementViews(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}})
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Video not found")
	}
	return nil
}

func (r *contentRepository) CreateTweet(ctx context.Context, tweet *entity.Tweet) error {
	tweetModel := ToTweetModel(tweet)
	if err := r.db.WithContext(ctx).Create(tweetModel).Error; err != nil {
		return apperr.Internal(err)
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *contentRepository) GetTweet(ctx context.Context, id string) (*entity.Tweet, error) {
	var tweetModel models.Tweet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tweetModel).Error; err != nil {
		return nil, translate(err, "Tweet not found")
	}
	return ToTweetEntity(&tweetModel), nil
}

func (r *contentRepository) UpdateTweet(ctx context.Context, tweet *entity.Tweet) error {
	tweet.UpdatedAt = time.Now()
	return r.conditionalUpdate(ctx, &models.Tweet{}, tweet.ID, tweet.OwnerID, map[string]interface{}{
		"content":    tweet.Content,
		"updated_at": tweet.UpdatedAt,
	}, "Tweet not found")
}

func (r *contentRepository) DeleteTweet(ctx context.Context, id, ownerID string) error {
	return r.conditionalDelete(ctx, &models.Tweet{}, id, ownerID, "Tweet not found")
}

func (r *contentRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		return apperr.Internal(err)
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *contentRepository) GetComment(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel models.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, translate(err, "Comment not found")
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *contentRepository) UpdateComment(ctx context.Context, comment *entity.Comment) error {
	comment.UpdatedAt = time.Now()
	return r.conditionalUpdate(ctx, &models.Comment{}, comment.ID, comment.OwnerID, map[string]interface{}{
		"content":    comment.Content,
		"updated_at": comment.UpdatedAt,
	}, "Comment not found")
}

func (r *contentRepository) DeleteComment(ctx context.Context, id, ownerID string) error {
	return r.conditionalDelete(ctx, &models.Comment{}, id, ownerID, "Comment not found")
}

func (r *contentRepository) conditionalUpdate(ctx context.Context, model interface{}, id, ownerID string, fields map[string]interface{}, notFound string) error {
	result := r.db.WithContext(ctx).Model(model).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(fields)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(notFound)
	}
	return nil
}

func (r *contentRepository) conditionalDelete(ctx context.Context, model interface{}, id, ownerID string, notFound string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(model)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(notFound)
	}
	return nil
}
