package http

import (
	"net/http"
	"strconv"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/platform/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

type PublishVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Duration    string `form:"duration"`
}

type UpdateVideoRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
}

// PublishVideo godoc
// @Summary      Publish a video
// @Description  Upload a video file and thumbnail and create the video record
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string false "Video description"
// @Param        duration formData int false "Duration in seconds"
// @Param        videoFile formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  response.Envelope{data=entity.Video}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /videos [post]
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	var req PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid form data"), h.logger)
		return
	}

	duration := 0
	if req.Duration != "" {
		d, err := strconv.Atoi(req.Duration)
		if err != nil {
			response.Error(c, apperr.Validation("Invalid duration"), h.logger)
			return
		}
		duration = d
	}

	videoFile, closeVideo, err := openMedia(c, "videoFile")
	defer closeVideo()
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}
	thumbnail, closeThumbnail, err := openMedia(c, "thumbnail")
	defer closeThumbnail()
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	video, err := h.videoUseCase.PublishVideo(c.Request.Context(), currentUserID(c), usecase.CreateVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusCreated, video, "Video published successfully")
}

// GetAllVideos godoc
// @Summary      List videos
// @Description  Paginated discovery listing with optional title search and owner filter
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Param        query query string false "Case-insensitive title substring"
// @Param        sortBy query string false "createdAt, updatedAt, title, views or duration"
// @Param        sortType query string false "asc or desc"
// @Param        userId query string false "Only videos owned by this user"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Video]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /videos [get]
func (h *VideoHandler) GetAllVideos(c *gin.Context) {
	page, limit, err := paging(c)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	videos, err := h.videoUseCase.ListVideos(c.Request.Context(), currentUserID(c), usecase.VideoQuery{
		Query:    c.Query("query"),
		OwnerID:  c.Query("userId"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, videos, "Videos fetched successfully")
}

// GetChannelVideos godoc
// @Summary      List my videos
// @Description  Paginated list of the current user's videos, including unpublished ones
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Video]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /videos/channel [get]
func (h *VideoHandler) GetChannelVideos(c *gin.Context) {
	page, limit, err := paging(c)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	videos, err := h.videoUseCase.ListChannelVideos(c.Request.Context(), currentUserID(c), page, limit)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, videos, "Channel videos fetched successfully")
}

// GetVideoByID godoc
// @Summary      Get video by ID
// @Description  Includes whether the caller likes the video and subscribes to its channel
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Envelope{data=entity.VideoDetail}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetVideoByID(c *gin.Context) {
	video, err := h.videoUseCase.GetVideo(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, video, "Video fetched successfully")
}

// UpdateVideo godoc
// @Summary      Update video
// @Description  Update title, description and/or thumbnail. Only the owner may update.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        title formData string false "New title"
// @Param        description formData string false "New description"
// @Param        thumbnail formData file false "New thumbnail"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/{id} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var req UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid form data"), h.logger)
		return
	}

	thumbnail, closeThumbnail, err := openMedia(c, "thumbnail")
	defer closeThumbnail()
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	video, err := h.videoUseCase.UpdateVideo(c.Request.Context(), currentUserID(c), c.Param("id"), usecase.UpdateVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, video, "Video updated successfully")
}

// DeleteVideo godoc
// @Summary      Delete video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.videoUseCase.DeleteVideo(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, gin.H{}, "Video deleted successfully")
}

// TogglePublishStatus godoc
// @Summary      Toggle publish status
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/{id}/publish [patch]
func (h *VideoHandler) TogglePublishStatus(c *gin.Context) {
	video, err := h.videoUseCase.TogglePublishStatus(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, video, "Video publish status toggled successfully")
}

// RecordView godoc
// @Summary      Record a view
// @Description  Counts one view per user per video and refreshes the watch history
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /videos/{id}/view [post]
func (h *VideoHandler) RecordView(c *gin.Context) {
	counted, err := h.videoUseCase.RecordView(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"counted": counted}, "View recorded")
}

// GetWatchHistory godoc
// @Summary      Watch history
// @Description  Videos the current user watched, most recent first
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.WatchedVideo]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /users/watch-history [get]
func (h *VideoHandler) GetWatchHistory(c *gin.Context) {
	page, limit, err := paging(c)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	history, err := h.videoUseCase.ListWatchHistory(c.Request.Context(), currentUserID(c), page, limit)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, history, "Watch history fetched successfully")
}
