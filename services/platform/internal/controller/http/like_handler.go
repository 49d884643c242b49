package http

import (
	"net/http"

	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

var likeMessages = map[entity.LikeKind][2]string{
	entity.LikeVideo:   {"Video liked", "Video unliked"},
	entity.LikeComment: {"Comment liked", "Comment unliked"},
	entity.LikeTweet:   {"Tweet liked", "Tweet unliked"},
}

// ToggleVideoLike godoc
// @Summary      Like or unlike a video
// @Description  Flips the like; data.state tells whether it was added or removed
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope{data=entity.ToggleResult}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Router       /likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, entity.LikeVideo, c.Param("videoId"))
}

// ToggleCommentLike godoc
// @Summary      Like or unlike a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  response.Envelope{data=entity.ToggleResult}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Router       /likes/toggle/c/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, entity.LikeComment, c.Param("commentId"))
}

// ToggleTweetLike godoc
// @Summary      Like or unlike a tweet
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200  {object}  response.Envelope{data=entity.ToggleResult}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Router       /likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, entity.LikeTweet, c.Param("tweetId"))
}

func (h *LikeHandler) toggle(c *gin.Context, kind entity.LikeKind, targetID string) {
	result, err := h.likeUseCase.ToggleLike(c.Request.Context(), currentUserID(c), kind, targetID)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	message := likeMessages[kind][0]
	if result.State == entity.ToggleRemoved {
		message = likeMessages[kind][1]
	}
	response.Success(c, http.StatusOK, result, message)
}

// GetLikedVideos godoc
// @Summary      Videos I liked
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Video]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /likes/videos [get]
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	page, limit, err := paging(c)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	videos, err := h.likeUseCase.ListLikedVideos(c.Request.Context(), currentUserID(c), page, limit)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
