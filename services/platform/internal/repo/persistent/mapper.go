package persistent

import (
	"vidtube/pkg/models"
	"vidtube/services/platform/internal/entity"
)

func ToVideoEntity(m *models.Video) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		VideoFile:   m.VideoFile,
		Thumbnail:   m.Thumbnail,
		Duration:    m.Duration,
		Views:       m.Views,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *models.Video {
	if e == nil {
		return nil
	}

	return &models.Video{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Description: e.Description,
		VideoFile:   e.VideoFile,
		Thumbnail:   e.Thumbnail,
		Duration:    e.Duration,
		Views:       e.Views,
		IsPublished: e.IsPublished,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToTweetEntity(m *models.Tweet) *entity.Tweet {
	if m == nil {
		return nil
	}

	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTweetModel(e *entity.Tweet) *models.Tweet {
	if e == nil {
		return nil
	}

	return &models.Tweet{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCommentEntity(m *models.Comment) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *models.Comment {
	if e == nil {
		return nil
	}

	return &models.Comment{
		ID:        e.ID,
		VideoID:   e.VideoID,
		OwnerID:   e.OwnerID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToProfileEntity(m *models.User) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:       m.ID,
		Username: m.Username,
		FullName: m.FullName,
		Avatar:   m.Avatar,
	}
}
