package handler

import (
	"Rately/config"
	"Rately/middleware"
	"Rately/pkg/context"
	"Rately/pkg/response"
	"Rately/service"
	"Rately/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Challenge struct {
	Config           *config.Config
	ChallengeService service.IChallengeService
}

func (h *Challenge) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config)
	g := r.Group("/v1/challenges", authorize)
	g.POST("", context.Wrap(h.CreateChallenge))
	g.GET("", context.Wrap(h.ListChallenges))
	g.DELETE("/:challenge_id", context.Wrap(h.DeleteChallenge))
}

// CreateChallenge 创建年度挑战
func (h *Challenge) CreateChallenge(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	var req types.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	progress, err := h.ChallengeService.CreateChallenge(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, progress)
	return nil
}

// ListChallenges 挑战列表（带实时进度）
func (h *Challenge) ListChallenges(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	resp, err := h.ChallengeService.ListChallenges(c.Request.Context(), uint64(userID))
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// DeleteChallenge 删除挑战
func (h *Challenge) DeleteChallenge(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	challengeID, err := strconv.ParseUint(c.Param("challenge_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "challenge_id 格式错误")
	}

	if err := h.ChallengeService.DeleteChallenge(c.Request.Context(), uint64(userID), challengeID); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
