package http

import (
	"net/http"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/platform/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type CommentRequest struct {
	Content string `json:"content"`
}

// GetVideoComments godoc
// @Summary      List comments on a video
// @Description  Newest first, each joined with the commenter's profile (null if the profile is gone)
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Comment]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /comments/{videoId} [get]
func (h *CommentHandler) GetVideoComments(c *gin.Context) {
	page, limit, err := paging(c)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	comments, err := h.commentUseCase.ListVideoComments(c.Request.Context(), currentUserID(c), c.Param("videoId"), page, limit)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, comments, "Comments fetched successfully")
}

// AddComment godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        request body CommentRequest true "Comment content"
// @Success      201  {object}  response.Envelope{data=entity.Comment}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /comments/{videoId} [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request body"), h.logger)
		return
	}

	comment, err := h.commentUseCase.AddComment(c.Request.Context(), currentUserID(c), c.Param("videoId"), req.Content)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusCreated, comment, "Comment added successfully")
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Param        request body CommentRequest true "New content"
// @Success      200  {object}  response.Envelope{data=entity.Comment}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /comments/c/{id} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request body"), h.logger)
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Request.Context(), currentUserID(c), c.Param("id"), req.Content)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /comments/c/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.DeleteComment(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, gin.H{}, "Comment deleted successfully")
}
