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

type Pin struct {
	Config     *config.Config
	PinService service.IPinService
}

func (h *Pin) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config)
	g := r.Group("/v1/pins", authorize)
	g.POST("", context.Wrap(h.PinItem))
	g.GET("", context.Wrap(h.ListPinnedItems))
	g.DELETE("/:pin_id", context.Wrap(h.UnpinItem))
}

// PinItem 置顶内容到个人主页
func (h *Pin) PinItem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	var req types.PinItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.PinService.PinItem(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}

// ListPinnedItems 置顶列表
func (h *Pin) ListPinnedItems(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	items, err := h.PinService.ListPinnedItems(c.Request.Context(), uint64(userID))
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}

// UnpinItem 取消置顶
func (h *Pin) UnpinItem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	pinID, err := strconv.ParseUint(c.Param("pin_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "pin_id 格式错误")
	}

	if err := h.PinService.UnpinItem(c.Request.Context(), uint64(userID), pinID); err != nil {
		return err
	}

	response.Success(c, gin.H{"unpinned": true})
	return nil
}
