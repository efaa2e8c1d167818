package handler

import (
	"Rately/config"
	"Rately/middleware"
	"Rately/pkg/context"
	"Rately/pkg/response"
	"Rately/service"
	"Rately/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Bookmark struct {
	Config          *config.Config
	BookmarkService service.IBookmarkService
}

func (h *Bookmark) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config)
	g := r.Group("/v1/bookmarks", authorize)
	g.POST("/toggle", context.Wrap(h.ToggleBookmark))
	g.GET("", context.Wrap(h.ListBookmarks))
}

// ToggleBookmark 书签开关
func (h *Bookmark) ToggleBookmark(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	var req types.ToggleBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	bookmarked, err := h.BookmarkService.ToggleBookmark(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"bookmarked": bookmarked})
	return nil
}

// ListBookmarks 书签列表，按类别分组
func (h *Bookmark) ListBookmarks(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	resp, err := h.BookmarkService.ListBookmarks(c.Request.Context(), uint64(userID))
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}
