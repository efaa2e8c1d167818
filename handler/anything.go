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

type Anything struct {
	Config          *config.Config
	AnythingService service.IAnythingService
	OssService      service.IOssService
}

func (h *Anything) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config)
	g := r.Group("/v1/anything")
	g.POST("", authorize, context.Wrap(h.CreateItem))
	g.POST("/cover", authorize, context.Wrap(h.UploadCover))
	g.GET("/:item_id", authorize, context.Wrap(h.GetItem))
	// 分享链接落地页不要求登录
	g.GET("/share/:code", context.Wrap(h.GetItemByShareCode))
}

// CreateItem 创建自建条目
func (h *Anything) CreateItem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	var req types.CreateAnythingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.AnythingService.CreateItem(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}

// UploadCover 上传条目封面
func (h *Anything) UploadCover(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少 image 文件")
	}

	resp, err := h.OssService.UploadCover(c.Request.Context(), uint64(userID), header)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// GetItem 条目详情
func (h *Anything) GetItem(c *gin.Context) error {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "item_id 格式错误")
	}

	item, err := h.AnythingService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}

// GetItemByShareCode 分享码访问条目
func (h *Anything) GetItemByShareCode(c *gin.Context) error {
	code := c.Param("code")
	if code == "" {
		return response.NewError(http.StatusBadRequest, "缺少分享码")
	}

	item, err := h.AnythingService.GetItemByShareCode(c.Request.Context(), code)
	if err != nil {
		return err
	}

	response.Success(c, item)
	return nil
}
