package handler

import (
	"Rately/config"
	"Rately/middleware"
	"Rately/pkg/context"
	"Rately/pkg/response"
	"Rately/service"
	"Rately/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Form struct {
	Config      *config.Config
	FormService service.IFormService
}

func (h *Form) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config)
	g := r.Group("/v1/rating-form", authorize)
	g.GET("", context.Wrap(h.LoadForm))
	g.POST("/submit", context.Wrap(h.SubmitForm))
}

// LoadForm 打开评分面板：内容摘要 + 既有评分预填
func (h *Form) LoadForm(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	contentType := c.Query("content_type")
	contentID := c.Query("content_id")
	if contentType == "" || contentID == "" {
		return response.NewError(http.StatusBadRequest, "缺少 content_type / content_id")
	}

	form, err := h.FormService.LoadRatingForm(c.Request.Context(), uint64(userID), contentType, contentID)
	if err != nil {
		return err
	}

	response.Success(c, form)
	return nil
}

// SubmitForm 提交表单
func (h *Form) SubmitForm(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	var req types.UpsertRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	form, err := h.FormService.SubmitRatingForm(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		// 保存失败也要把表单状态带回去，前端据此提示重试
		code, msg := http.StatusInternalServerError, err.Error()
		var be *response.BizError
		if errors.As(err, &be) {
			code, msg = be.Code, be.Msg
		}
		c.JSON(http.StatusOK, response.Response{Code: code, Msg: msg, Data: form})
		return nil
	}

	response.Success(c, form)
	return nil
}
