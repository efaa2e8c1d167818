package handler

import (
	"Rately/config"
	"Rately/middleware"
	"Rately/pkg/context"
	"Rately/pkg/response"
	"Rately/service"
	"Rately/types"

	"github.com/gin-gonic/gin"
)

type Stats struct {
	Config       *config.Config
	StatsService service.IStatsService
}

func (h *Stats) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config)
	g := r.Group("/v1/stats", authorize)
	g.GET("/distribution", context.Wrap(h.GetDistribution))
}

// GetDistribution 评分分布直方图数据
func (h *Stats) GetDistribution(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	dist, err := h.StatsService.GetScoreDistribution(c.Request.Context(), uint64(userID))
	if err != nil {
		return err
	}

	response.Success(c, dist)
	return nil
}
