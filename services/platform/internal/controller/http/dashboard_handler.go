package http

import (
	"net/http"

	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/platform/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// GetChannelStats godoc
// @Summary      Channel statistics
// @Description  Video count, total views, subscriber count and likes across the current user's videos
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=entity.ChannelStats}
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetChannelStats(c *gin.Context) {
	stats, err := h.dashboardUseCase.GetChannelStats(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

// GetChannelVideos godoc
// @Summary      Channel videos
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (1-based)"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  response.Envelope{data=entity.Page[entity.Video]}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /dashboard/videos [get]
func (h *DashboardHandler) GetChannelVideos(c *gin.Context) {
	page, limit, err := paging(c)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	videos, err := h.dashboardUseCase.GetChannelVideos(c.Request.Context(), currentUserID(c), page, limit)
	if err != nil {
		response.Error(c, err, h.logger)
		return
	}

	response.Success(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
