package http

import (
	"net/http"

	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

// ToggleSubscription godoc
// @Summary      Subscribe or unsubscribe
// @Description  Flips the subscription; 201 when subscribed, 200 when unsubscribed
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Success      200  {object}  response.Envelope{data=entity.ToggleResult}
// @Success      201  {object}  response.Envelope{data=entity.ToggleResult}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      404  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Router       /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	result, err := h.subscriptionUseCase.ToggleSubscription(c.Request.Context(), currentUserID(c), c.Param("channelId"))
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	if result.State == entity.ToggleAdded {
		response.Success(c, http.StatusCreated, result, "Subscribed successfully")
		return
	}
	response.Success(c, http.StatusOK, result, "Unsubscribed successfully")
}

// GetSubscribedChannels godoc
// @Summary      Channels a user subscribes to
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Description  The channelId path segment names the subscriber whose channels are listed
// @Param        channelId path string true "Subscriber (user) ID"
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.SubscriptionEdge]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	h.listChannels(c, c.Param("channelId"))
}

// GetMySubscribedChannels godoc
// @Summary      Channels I subscribe to
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.SubscriptionEdge]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /subscriptions/subscribed-channels [get]
func (h *SubscriptionHandler) GetMySubscribedChannels(c *gin.Context) {
	h.listChannels(c, currentUserID(c))
}

func (h *SubscriptionHandler) listChannels(c *gin.Context, subscriberID string) {
	page, limit, err := paging(c)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	channels, err := h.subscriptionUseCase.ListSubscribedChannels(c.Request.Context(), subscriberID, page, limit)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}

// GetChannelSubscribers godoc
// @Summary      Subscribers of a channel
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.SubscriptionEdge]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /subscriptions/subscribers/{channelId} [get]
func (h *SubscriptionHandler) GetChannelSubscribers(c *gin.Context) {
	page, limit, err := paging(c)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	subscribers, err := h.subscriptionUseCase.ListSubscribers(c.Request.Context(), c.Param("channelId"), page, limit)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

// GetSubscriberCount godoc
// @Summary      Subscriber count
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Success      200  {object}  response.Envelope{data=entity.SubscriberCount}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /subscriptions/count/{channelId} [get]
func (h *SubscriptionHandler) GetSubscriberCount(c *gin.Context) {
	count, err := h.subscriptionUseCase.CountSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, count, "Subscriber count fetched successfully")
}
