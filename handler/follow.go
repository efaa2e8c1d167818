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

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (h *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config)
	g := r.Group("/v1/follow")
	g.POST("/:user_id", authorize, context.Wrap(h.FollowUser))
	g.DELETE("/:user_id", authorize, context.Wrap(h.UnfollowUser))
	g.GET("/:user_id/status", authorize, context.Wrap(h.GetFollowStatus))
	g.GET("/:user_id/followers/count", context.Wrap(h.GetFollowerCount))
	g.GET("/:user_id/following/count", context.Wrap(h.GetFollowingCount))
	g.GET("/list", authorize, context.Wrap(h.GetFollowingList))
}

func parseUserIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}
	return id, nil
}

// FollowUser 关注用户
func (h *Follow) FollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	if err := h.FollowService.Follow(c.Request.Context(), uint64(userID), targetUserID); err != nil {
		return err
	}

	response.Success(c, gin.H{"followed": true})
	return nil
}

// UnfollowUser 取消关注用户
func (h *Follow) UnfollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	if err := h.FollowService.Unfollow(c.Request.Context(), uint64(userID), targetUserID); err != nil {
		return err
	}

	response.Success(c, gin.H{"followed": false})
	return nil
}

// GetFollowStatus 查询是否已关注
func (h *Follow) GetFollowStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	isFollowing, err := h.FollowService.IsFollowing(c.Request.Context(), uint64(userID), targetUserID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"following": isFollowing})
	return nil
}

// GetFollowerCount 粉丝数
func (h *Follow) GetFollowerCount(c *gin.Context) error {
	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	count, err := h.FollowService.GetFollowerCount(c.Request.Context(), targetUserID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"count": count})
	return nil
}

// GetFollowingCount 关注数
func (h *Follow) GetFollowingCount(c *gin.Context) error {
	targetUserID, err := parseUserIDParam(c)
	if err != nil {
		return err
	}

	count, err := h.FollowService.GetFollowingCount(c.Request.Context(), targetUserID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"count": count})
	return nil
}

// GetFollowingList 关注列表
func (h *Follow) GetFollowingList(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	var req types.GetFollowingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.FollowService.GetFollowingList(c.Request.Context(), uint64(userID), req.PageSize, int(req.Cursor))
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}
