package handler

import (
	"Rately/config"
	"Rately/dao"
	"Rately/pkg/context"
	"Rately/pkg/response"
	"Rately/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config        *config.Config
	UserDAO       *dao.Users
	StatsDAO      *dao.UserStatsDAO
	PinService    service.IPinService
	FollowService service.IFollowService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/users")
	g.GET("/:user_id", context.Wrap(h.GetProfile))
}

// GetProfile 个人主页：基础信息 + 计数 + 置顶位
func (h *User) GetProfile(c *gin.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}

	user, err := h.UserDAO.GetByID(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	if user == nil {
		return response.NewError(http.StatusNotFound, "用户不存在")
	}

	stats, err := h.StatsDAO.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	pins, err := h.PinService.ListPinnedItems(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	profile := gin.H{
		"user_id":   user.ID,
		"nickname":  user.Nickname,
		"avatar":    user.Avatar,
		"signature": user.Signature,
		"pins":      pins,
	}
	if stats != nil {
		profile["rating_count"] = stats.RatingCount
		profile["follower_count"] = stats.FollowerCount
		profile["following_count"] = stats.FollowingCount
	} else {
		profile["rating_count"] = 0
		profile["follower_count"] = 0
		profile["following_count"] = 0
	}

	// 登录用户带上关注关系
	if viewerID, err := context.GetUserID(c); err == nil && uint64(viewerID) != userID {
		following, err := h.FollowService.IsFollowing(c.Request.Context(), uint64(viewerID), userID)
		if err == nil {
			profile["is_following"] = following
		}
	}

	response.Success(c, profile)
	return nil
}
