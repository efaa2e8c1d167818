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

type Feed struct {
	Config      *config.Config
	FeedService service.IFeedService
}

func (h *Feed) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config)
	g := r.Group("/v1/feed")
	g.GET("/friends", authorize, context.Wrap(h.GetFriendsTrending))
	g.GET("/suggestions", authorize, context.Wrap(h.GetSuggestions))
	// 全站热榜不要求登录
	g.GET("/trending", context.Wrap(h.GetGlobalTrending))
}

// GetFriendsTrending 好友动态榜
func (h *Feed) GetFriendsTrending(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	items, err := h.FeedService.GetFriendsTrending(c.Request.Context(), uint64(userID))
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}

// GetGlobalTrending 全站热榜
func (h *Feed) GetGlobalTrending(c *gin.Context) error {
	items, err := h.FeedService.GetGlobalTrending(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}

// GetSuggestions 好友高分推荐
func (h *Feed) GetSuggestions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	items, err := h.FeedService.GetSuggestions(c.Request.Context(), uint64(userID))
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}
