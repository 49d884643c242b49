package persistent

import (
	"context"
	"strings"
	"time"

	"vidtube/pkg/apperr"
	"vidtube/pkg/models"
	"vidtube/services/platform/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// videoSortColumns whitelists the sortBy values accepted by ListVideos.
var videoSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"views":     "views",
	"duration":  "duration",
}

// AggregationRepository builds the read-only, paginated views. Owner
// profiles are attached with a second query; a missing profile leaves the
// row in place with a nil profile.
type AggregationRepository interface {
	ListVideos(ctx context.Context, filter entity.VideoFilter, page entity.PageRequest) ([]*entity.Video, int64, error)
	ListComments(ctx context.Context, videoID string, page entity.PageRequest) ([]*entity.Comment, int64, error)
	ListTweets(ctx context.Context, ownerID string, page entity.PageRequest) ([]*entity.Tweet, int64, error)
	ListLikedVideos(ctx context.Context, userID string, page entity.PageRequest) ([]*entity.Video, int64, error)
	ListWatchHistory(ctx context.Context, userID string, page entity.PageRequest) ([]*entity.WatchedVideo, int64, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string, page entity.PageRequest) ([]*entity.SubscriptionEdge, int64, error)
	ListSubscribers(ctx context.Context, channelID string, page entity.PageRequest) ([]*entity.SubscriptionEdge, int64, error)
	CountSubscribers(ctx context.Context, channelID string) (int64, error)
	ChannelStats(ctx context.Context, ownerID string) (*entity.ChannelStats, error)
}

type aggregationRepository struct {
	db *gorm.DB
}

func NewAggregationRepository(db *gorm.DB) AggregationRepository {
	return &aggregationRepository{db: db}
}

// IsValidVideoSort reports whether sortBy is one of the accepted keys.
func IsValidVideoSort(sortBy string) bool {
	_, ok := videoSortColumns[sortBy]
	return ok
}

func (r *aggregationRepository) ListVideos(ctx context.Context, filter entity.VideoFilter, page entity.PageRequest) ([]*entity.Video, int64, error) {
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
		filter.SortDesc = true
	}
	column, ok := videoSortColumns[sortBy]
	if !ok {
		return nil, 0, apperr.Validation("Invalid sortBy field")
	}

	scope := func(db *gorm.DB) *gorm.DB {
		if filter.ViewerID != "" {
			db = db.Where("(is_published = ? OR owner_id = ?)", true, filter.ViewerID)
		} else {
			db = db.Where("is_published = ?", true)
		}
		if filter.OwnerID != "" {
			db = db.Where("owner_id = ?", filter.OwnerID)
		}
		if q := strings.TrimSpace(filter.Query); q != "" {
			db = db.Where("LOWER(title) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(q))+"%")
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Video{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var videoModels []models.Video
	err := r.db.WithContext(ctx).Model(&models.Video{}).Scopes(scope).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: filter.SortDesc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: filter.SortDesc}).
		Limit(page.Limit).Offset(page.Offset()).
		Find(&videoModels).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	if err := r.attachVideoOwners(ctx, videos); err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (r *aggregationRepository) ListComments(ctx context.Context, videoID string, page entity.PageRequest) ([]*entity.Comment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("video_id = ?", videoID).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var commentModels []models.Comment
	err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).Offset(page.Offset()).
		Find(&commentModels).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	comments := make([]*entity.Comment, len(commentModels))
	ownerIDs := make([]string, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
		ownerIDs[i] = comments[i].OwnerID
	}

	profiles, err := loadProfiles(ctx, r.db, ownerIDs)
	if err != nil {
		return nil, 0, err
	}
	for _, c := range comments {
		c.Owner = profiles[c.OwnerID]
	}
	return comments, total, nil
}

func (r *aggregationRepository) ListTweets(ctx context.Context, ownerID string, page entity.PageRequest) ([]*entity.Tweet, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Tweet{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var tweetModels []models.Tweet
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).Offset(page.Offset()).
		Find(&tweetModels).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	profiles, err := loadProfiles(ctx, r.db, []string{ownerID})
	if err != nil {
		return nil, 0, err
	}

	tweets := make([]*entity.Tweet, len(tweetModels))
	for i := range tweetModels {
		tweets[i] = ToTweetEntity(&tweetModels[i])
		tweets[i].Owner = profiles[ownerID]
	}
	return tweets, total, nil
}

// ListLikedVideos joins likes to videos; likes on deleted videos and on
// other people's unpublished videos drop out of both the page and the total.
func (r *aggregationRepository) ListLikedVideos(ctx context.Context, userID string, page entity.PageRequest) ([]*entity.Video, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.Table("likes").
			Joins("JOIN videos ON videos.id = likes.target_id").
			Where("likes.liked_by = ? AND likes.target_kind = ?", userID, models.LikeTargetVideo).
			Where("(videos.is_published = ? OR videos.owner_id = ?)", true, userID)
	}

	var total int64
	if err := r.db.WithContext(ctx).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var videoModels []models.Video
	err := r.db.WithContext(ctx).Scopes(scope).
		Select("videos.*").
		Order("likes.created_at DESC, likes.id DESC").
		Limit(page.Limit).Offset(page.Offset()).
		Scan(&videoModels).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	if err := r.attachVideoOwners(ctx, videos); err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

type watchedRow struct {
	models.Video `gorm:"embedded"`
	WatchedAt    time.Time
}

func (r *aggregationRepository) ListWatchHistory(ctx context.Context, userID string, page entity.PageRequest) ([]*entity.WatchedVideo, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.Table("watch_history").
			Joins("JOIN videos ON videos.id = watch_history.video_id").
			Where("watch_history.user_id = ?", userID).
			Where("(videos.is_published = ? OR videos.owner_id = ?)", true, userID)
	}

	var total int64
	if err := r.db.WithContext(ctx).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var rows []watchedRow
	err := r.db.WithContext(ctx).Scopes(scope).
		Select("videos.*, watch_history.watched_at AS watched_at").
		Order("watch_history.watched_at DESC, watch_history.id DESC").
		Limit(page.Limit).Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	watched := make([]*entity.WatchedVideo, len(rows))
	videos := make([]*entity.Video, len(rows))
	for i := range rows {
		watched[i] = &entity.WatchedVideo{Video: *ToVideoEntity(&rows[i].Video), WatchedAt: rows[i].WatchedAt}
		videos[i] = &watched[i].Video
	}
	if err := r.attachVideoOwners(ctx, videos); err != nil {
		return nil, 0, err
	}
	return watched, total, nil
}

func (r *aggregationRepository) ListSubscribedChannels(ctx context.Context, subscriberID string, page entity.PageRequest) ([]*entity.SubscriptionEdge, int64, error) {
	return r.listSubscriptionEdges(ctx, "subscriber_id", subscriberID, func(s *models.Subscription) string {
		return s.ChannelID
	}, page)
}

func (r *aggregationRepository) ListSubscribers(ctx context.Context, channelID string, page entity.PageRequest) ([]*entity.SubscriptionEdge, int64, error) {
	return r.listSubscriptionEdges(ctx, "channel_id", channelID, func(s *models.Subscription) string {
		return s.SubscriberID
	}, page)
}

func (r *aggregationRepository) listSubscriptionEdges(ctx context.Context, column, id string, other func(*models.Subscription) string, page entity.PageRequest) ([]*entity.SubscriptionEdge, int64, error) {
	where := column + " = ?"

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Subscription{}).Where(where, id).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var subscriptions []models.Subscription
	err := r.db.WithContext(ctx).
		Where(where, id).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).Offset(page.Offset()).
		Find(&subscriptions).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	edges := make([]*entity.SubscriptionEdge, len(subscriptions))
	userIDs := make([]string, len(subscriptions))
	for i := range subscriptions {
		userIDs[i] = other(&subscriptions[i])
		edges[i] = &entity.SubscriptionEdge{
			UserID:       userIDs[i],
			SubscribedAt: subscriptions[i].CreatedAt,
		}
	}

	profiles, err := loadProfiles(ctx, r.db, userIDs)
	if err != nil {
		return nil, 0, err
	}
	for _, e := range edges {
		e.Profile = profiles[e.UserID]
	}
	return edges, total, nil
}

func (r *aggregationRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error; err != nil {
		return 0, apperr.Internal(err)
	}
	return count, nil
}

func (r *aggregationRepository) ChannelStats(ctx context.Context, ownerID string) (*entity.ChannelStats, error) {
	stats := &entity.ChannelStats{}
	db := r.db.WithContext(ctx)

	row := db.Model(&models.Video{}).
		Select("COUNT(*), COALESCE(SUM(views), 0)").
		Where("owner_id = ?", ownerID).
		Row()
	if err := row.Scan(&stats.TotalVideos, &stats.TotalViews); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := db.Model(&models.Subscription{}).Where("channel_id = ?", ownerID).Count(&stats.TotalSubscribers).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	ownVideos := db.Model(&models.Video{}).Select("id").Where("owner_id = ?", ownerID)
	err := db.Model(&models.Like{}).
		Where("target_kind = ? AND target_id IN (?)", models.LikeTargetVideo, ownVideos).
		Count(&stats.TotalLikes).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return stats, nil
}

func (r *aggregationRepository) attachVideoOwners(ctx context.Context, videos []*entity.Video) error {
	ownerIDs := make([]string, len(videos))
	for i, v := range videos {
		ownerIDs[i] = v.OwnerID
	}

	profiles, err := loadProfiles(ctx, r.db, ownerIDs)
	if err != nil {
		return err
	}
	for _, v := range videos {
		v.Owner = profiles[v.OwnerID]
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
