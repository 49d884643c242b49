package usecase

import (
	"context"
	"errors"
	"strings"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/repo/persistent"
)

type CommentUseCase interface {
	ListVideoComments(ctx context.Context, viewerID, videoID string, page, limit int) (entity.Page[*entity.Comment], error)
	AddComment(ctx context.Context, actorID, videoID, content string) (*entity.Comment, error)
	UpdateComment(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID string) error
}

type commentUseCase struct {
	contentRepo     persistent.ContentRepository
	aggregationRepo persistent.AggregationRepository
	logger          *logger.Logger
}

func NewCommentUseCase(
	contentRepo persistent.ContentRepository,
	aggregationRepo persistent.AggregationRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		contentRepo:     contentRepo,
		aggregationRepo: aggregationRepo,
		logger:          logger,
	}
}

func (uc *commentUseCase) ListVideoComments(ctx context.Context, viewerID, videoID string, page, limit int) (entity.Page[*entity.Comment], error) {
	if err := validateID(videoID, "video"); err != nil {
		return entity.Page[*entity.Comment]{}, err
	}
	req, err := entity.NewPageRequest(page, limit)
	if err != nil {
		return entity.Page[*entity.Comment]{}, err
	}
	// Comments of a deleted video stay listable; a hidden video hides them.
	video, err := uc.contentRepo.GetVideo(ctx, videoID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
	case err != nil:
		return entity.Page[*entity.Comment]{}, err
	case !video.VisibleTo(viewerID):
		return entity.Page[*entity.Comment]{}, apperr.NotFound("Video not found")
	}

	comments, total, err := uc.aggregationRepo.ListComments(ctx, videoID, req)
	if err != nil {
		return entity.Page[*entity.Comment]{}, err
	}
	return entity.NewPage(comments, req, total), nil
}

func (uc *commentUseCase) AddComment(ctx context.Context, actorID, videoID, content string) (*entity.Comment, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.Validation("Comment content is required")
	}
	if _, err := uc.visibleVideo(ctx, actorID, videoID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{VideoID: videoID, OwnerID: actorID, Content: content}
	if err := uc.contentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) UpdateComment(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.Validation("Comment content is required")
	}

	comment, err := uc.ownedComment(ctx, actorID, commentID, "update")
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := uc.contentRepo.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, actorID, commentID string) error {
	comment, err := uc.ownedComment(ctx, actorID, commentID, "delete")
	if err != nil {
		return err
	}
	return uc.contentRepo.DeleteComment(ctx, comment.ID, actorID)
}

// ownedComment does not look at the video: comments outlive deleted videos
// and their authors can still edit or remove them.
func (uc *commentUseCase) ownedComment(ctx context.Context, actorID, commentID, action string) (*entity.Comment, error) {
	if err := validateID(commentID, "comment"); err != nil {
		return nil, err
	}

	comment, err := uc.contentRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actorID, comment, action); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) visibleVideo(ctx context.Context, viewerID, videoID string) (*entity.Video, error) {
	video, err := uc.contentRepo.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.VisibleTo(viewerID) {
		return nil, apperr.NotFound("Video not found")
	}
	return video, nil
}
