package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/repo/persistent"

	"github.com/google/uuid"
)

type CreateVideoInput struct {
	Title       string
	Description string
	Duration    int
	VideoFile   *MediaFile
	Thumbnail   *MediaFile
}

// UpdateVideoInput carries only the owner-mutable fields; nil means unchanged.
type UpdateVideoInput struct {
	Title       *string
	Description *string
	Thumbnail   *MediaFile
}

type VideoQuery struct {
	Query    string
	OwnerID  string
	SortBy   string
	SortType string
	Page     int
	Limit    int
}

type VideoUseCase interface {
	PublishVideo(ctx context.Context, actorID string, input CreateVideoInput) (*entity.Video, error)
	GetVideo(ctx context.Context, viewerID, videoID string) (*entity.VideoDetail, error)
	ListVideos(ctx context.Context, viewerID string, query VideoQuery) (entity.Page[*entity.Video], error)
	ListChannelVideos(ctx context.Context, actorID string, page, limit int) (entity.Page[*entity.Video], error)
	UpdateVideo(ctx context.Context, actorID, videoID string, input UpdateVideoInput) (*entity.Video, error)
	DeleteVideo(ctx context.Context, actorID, videoID string) error
	TogglePublishStatus(ctx context.Context, actorID, videoID string) (*entity.Video, error)
	RecordView(ctx context.Context, viewerID, videoID string) (bool, error)
	ListWatchHistory(ctx context.Context, userID string, page, limit int) (entity.Page[*entity.WatchedVideo], error)
}

type videoUseCase struct {
	contentRepo     persistent.ContentRepository
	aggregationRepo persistent.AggregationRepository
	profileRepo     persistent.ProfileRepository
	historyRepo     persistent.WatchHistoryRepository
	engagementRepo  persistent.EngagementRepository
	uploader        MediaUploader
	viewMarker      ViewMarker
	logger          *logger.Logger
}

func NewVideoUseCase(
	contentRepo persistent.ContentRepository,
	aggregationRepo persistent.AggregationRepository,
	profileRepo persistent.ProfileRepository,
	historyRepo persistent.WatchHistoryRepository,
	engagementRepo persistent.EngagementRepository,
	uploader MediaUploader,
	viewMarker ViewMarker,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		contentRepo:     contentRepo,
		aggregationRepo: aggregationRepo,
		profileRepo:     profileRepo,
		historyRepo:     historyRepo,
		engagementRepo:  engagementRepo,
		uploader:        uploader,
		viewMarker:      viewMarker,
		logger:          logger,
	}
}

func (uc *videoUseCase) PublishVideo(ctx context.Context, actorID string, input CreateVideoInput) (*entity.Video, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperr.Validation("Title is required")
	}
	if input.Duration < 0 {
		return nil, apperr.Validation("Duration must not be negative")
	}
	if input.VideoFile == nil {
		return nil, apperr.Validation("Video file is required")
	}
	if input.Thumbnail == nil {
		return nil, apperr.Validation("Thumbnail is required")
	}

	videoURL, err := uc.upload(ctx, "videos", actorID, input.VideoFile)
	if err != nil {
		return nil, err
	}

	thumbnailURL, err := uc.upload(ctx, "thumbnails", actorID, input.Thumbnail)
	if err != nil {
		uc.discard(videoURL)
		return nil, err
	}

	video := &entity.Video{
		OwnerID:     actorID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Duration:    input.Duration,
		IsPublished: true,
	}
	if err := uc.contentRepo.CreateVideo(ctx, video); err != nil {
		uc.discard(videoURL, thumbnailURL)
		return nil, err
	}

	uc.logger.Info("Video %s published by %s", video.ID, actorID)
	return video, nil
}

func (uc *videoUseCase) GetVideo(ctx context.Context, viewerID, videoID string) (*entity.VideoDetail, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}

	video, err := uc.contentRepo.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.VisibleTo(viewerID) {
		return nil, apperr.NotFound("Video not found")
	}

	profiles, err := uc.profileRepo.GetProfiles(ctx, []string{video.OwnerID})
	if err != nil {
		return nil, err
	}
	video.Owner = profiles[video.OwnerID]

	detail := &entity.VideoDetail{Video: *video}
	if viewerID == "" {
		return detail, nil
	}
	if detail.IsLiked, err = uc.engagementRepo.IsLiked(ctx, viewerID, entity.LikeVideo, video.ID); err != nil {
		return nil, err
	}
	if detail.IsSubscribed, err = uc.engagementRepo.IsSubscribed(ctx, viewerID, video.OwnerID); err != nil {
		return nil, err
	}
	return detail, nil
}

func (uc *videoUseCase) ListVideos(ctx context.Context, viewerID string, query VideoQuery) (entity.Page[*entity.Video], error) {
	page, err := entity.NewPageRequest(query.Page, query.Limit)
	if err != nil {
		return entity.Page[*entity.Video]{}, err
	}
	if query.OwnerID != "" {
		if err := validateID(query.OwnerID, "user"); err != nil {
			return entity.Page[*entity.Video]{}, err
		}
	}

	filter := entity.VideoFilter{
		ViewerID: viewerID,
		OwnerID:  query.OwnerID,
		Query:    query.Query,
		SortBy:   query.SortBy,
		SortDesc: true,
	}
	if filter.SortBy != "" && !persistent.IsValidVideoSort(filter.SortBy) {
		return entity.Page[*entity.Video]{}, apperr.Validation("Invalid sortBy field")
	}
	switch strings.ToLower(query.SortType) {
	case "", "desc":
	case "asc":
		filter.SortDesc = false
	default:
		return entity.Page[*entity.Video]{}, apperr.Validation("sortType must be asc or desc")
	}

	videos, total, err := uc.aggregationRepo.ListVideos(ctx, filter, page)
	if err != nil {
		return entity.Page[*entity.Video]{}, err
	}
	return entity.NewPage(videos, page, total), nil
}

func (uc *videoUseCase) ListChannelVideos(ctx context.Context, actorID string, page, limit int) (entity.Page[*entity.Video], error) {
	req, err := entity.NewPageRequest(page, limit)
	if err != nil {
		return entity.Page[*entity.Video]{}, err
	}

	filter := entity.VideoFilter{ViewerID: actorID, OwnerID: actorID, SortDesc: true}
	videos, total, err := uc.aggregationRepo.ListVideos(ctx, filter, req)
	if err != nil {
		return entity.Page[*entity.Video]{}, err
	}
	return entity.NewPage(videos, req, total), nil
}

func (uc *videoUseCase) UpdateVideo(ctx context.Context, actorID, videoID string, input UpdateVideoInput) (*entity.Video, error) {
	video, err := uc.ownedVideo(ctx, actorID, videoID, "update")
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperr.Validation("Title cannot be empty")
		}
		video.Title = title
	}
	if input.Description != nil {
		video.Description = strings.TrimSpace(*input.Description)
	}

	oldThumbnail := ""
	if input.Thumbnail != nil {
		thumbnailURL, err := uc.upload(ctx, "thumbnails", actorID, input.Thumbnail)
		if err != nil {
			return nil, err
		}
		oldThumbnail = video.Thumbnail
		video.Thumbnail = thumbnailURL
	}

	if err := uc.contentRepo.UpdateVideo(ctx, video); err != nil {
		if input.Thumbnail != nil {
			uc.discard(video.Thumbnail)
		}
		return nil, err
	}
	if oldThumbnail != "" {
		uc.discard(oldThumbnail)
	}

	return video, nil
}

func (uc *videoUseCase) DeleteVideo(ctx context.Context, actorID, videoID string) error {
	video, err := uc.ownedVideo(ctx, actorID, videoID, "delete")
	if err != nil {
		return err
	}

	if err := uc.contentRepo.DeleteVideo(ctx, video.ID, actorID); err != nil {
		return err
	}

	uc.discard(video.VideoFile, video.Thumbnail)
	uc.logger.Info("Video %s deleted by %s", video.ID, actorID)
	return nil
}

func (uc *videoUseCase) TogglePublishStatus(ctx context.Context, actorID, videoID string) (*entity.Video, error) {
	video, err := uc.ownedVideo(ctx, actorID, videoID, "update")
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := uc.contentRepo.UpdateVideo(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// RecordView counts at most one view per (viewer, video) and always refreshes
// the viewer's watch history. The bool reports whether the view was counted.
func (uc *videoUseCase) RecordView(ctx context.Context, viewerID, videoID string) (bool, error) {
	if err := validateID(videoID, "video"); err != nil {
		return false, err
	}

	video, err := uc.contentRepo.GetVideo(ctx, videoID)
	if err != nil {
		return false, err
	}
	if !video.VisibleTo(viewerID) {
		return false, apperr.NotFound("Video not found")
	}

	counted := true
	if uc.viewMarker != nil {
		first, err := uc.viewMarker.MarkViewed(ctx, viewerID, videoID)
		if err != nil {
			uc.logger.Error("Failed to mark view in Redis: %v", err)
			return false, apperr.Internal(err)
		}
		counted = first
	}

	if err := uc.storeView(ctx, viewerID, videoID, counted); err != nil {
		if counted && uc.viewMarker != nil {
			if clearErr := uc.viewMarker.ClearViewed(ctx, viewerID, videoID); clearErr != nil {
				uc.logger.Error("Failed to clear view mark for %s on %s: %v", viewerID, videoID, clearErr)
			}
		}
		return false, err
	}
	return counted, nil
}

// storeView refreshes the history row before counting, so a counted view
// is never followed by a failure.
func (uc *videoUseCase) storeView(ctx context.Context, viewerID, videoID string, counted bool) error {
	if err := uc.historyRepo.Record(ctx, viewerID, videoID, time.Now()); err != nil {
		return err
	}
	if counted {
		return uc.contentRepo.IncrementViews(ctx, videoID)
	}
	return nil
}

func (uc *videoUseCase) ListWatchHistory(ctx context.Context, userID string, page, limit int) (entity.Page[*entity.WatchedVideo], error) {
	req, err := entity.NewPageRequest(page, limit)
	if err != nil {
		return entity.Page[*entity.WatchedVideo]{}, err
	}

	watched, total, err := uc.aggregationRepo.ListWatchHistory(ctx, userID, req)
	if err != nil {
		return entity.Page[*entity.WatchedVideo]{}, err
	}
	return entity.NewPage(watched, req, total), nil
}

// ownedVideo loads the video and runs the ownership guard for action.
// Other people's unpublished videos look absent rather than forbidden.
func (uc *videoUseCase) ownedVideo(ctx context.Context, actorID, videoID, action string) (*entity.Video, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}

	video, err := uc.contentRepo.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.VisibleTo(actorID) {
		return nil, apperr.NotFound("Video not found")
	}
	if err := Authorize(actorID, video, action); err != nil {
		return nil, err
	}
	return video, nil
}

func (uc *videoUseCase) upload(ctx context.Context, folder, ownerID string, file *MediaFile) (string, error) {
	if uc.uploader == nil {
		return "", apperr.UpstreamFailure("upload failed", fmt.Errorf("no media uploader configured"))
	}

	key := fmt.Sprintf("%s/%s/%s%s", folder, ownerID, uuid.New().String(), strings.ToLower(filepath.Ext(file.Filename)))
	url, err := uc.uploader.UploadFile(ctx, key, file.Body, file.ContentType)
	if err != nil {
		return "", apperr.UpstreamFailure("upload failed", err)
	}
	if url == "" {
		return "", apperr.UpstreamFailure("upload failed", fmt.Errorf("uploader returned no locator for %s", key))
	}
	return url, nil
}

// discard removes uploaded media on a best-effort basis.
func (uc *videoUseCase) discard(urls ...string) {
	if uc.uploader == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := uc.uploader.DeleteByURL(ctx, url); err != nil {
			uc.logger.Warn("Failed to delete media %s: %v", url, err)
		}
	}
}
