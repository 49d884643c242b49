package http

import (
	"net/http"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/platform/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{
		tweetUseCase: tweetUseCase,
		logger:       logger,
	}
}

type TweetRequest struct {
	Content string `json:"content"`
}

// CreateTweet godoc
// @Summary      Create a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TweetRequest true "Tweet content"
// @Success      201  {object}  response.Envelope{data=entity.Tweet}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /tweets [post]
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request body"), h.logger)
		return
	}

	tweet, err := h.tweetUseCase.CreateTweet(c.Request.Context(), currentUserID(c), req.Content)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusCreated, tweet, "Tweet created successfully")
}

// GetUserTweets godoc
// @Summary      List a user's tweets
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Tweet]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /tweets/user/{id} [get]
func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	h.listTweets(c, c.Param("id"))
}

// GetMyTweets godoc
// @Summary      List my tweets
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Tweet]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /tweets/user-tweets [get]
func (h *TweetHandler) GetMyTweets(c *gin.Context) {
	h.listTweets(c, currentUserID(c))
}

func (h *TweetHandler) listTweets(c *gin.Context, userID string) {
	page, limit, err := paging(c)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	tweets, err := h.tweetUseCase.ListUserTweets(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

// UpdateTweet godoc
// @Summary      Update a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Param        request body TweetRequest true "New content"
// @Success      200  {object}  response.Envelope{data=entity.Tweet}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /tweets/{id} [patch]
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request body"), h.logger)
		return
	}

	tweet, err := h.tweetUseCase.UpdateTweet(c.Request.Context(), currentUserID(c), c.Param("id"), req.Content)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, tweet, "Tweet updated successfully")
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Router       /tweets/{id} [delete]
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	if err := h.tweetUseCase.DeleteTweet(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, gin.H{}, "Tweet deleted successfully")
}
