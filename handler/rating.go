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

type Rating struct {
	Config        *config.Config
	RatingService service.IRatingService
}

func (h *Rating) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config)
	g := r.Group("/v1/ratings", authorize)
	g.PUT("", context.Wrap(h.UpsertRating))
	g.GET("", context.Wrap(h.ListRatings))
	g.GET("/one", context.Wrap(h.GetRating))
	g.DELETE("/:rating_id", context.Wrap(h.DeleteRating))
}

// UpsertRating 提交或修改评分
func (h *Rating) UpsertRating(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	var req types.UpsertRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.RatingService.UpsertRating(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// GetRating 查询自己对某内容的评分，未评过返回空数据
func (h *Rating) GetRating(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	contentType := c.Query("content_type")
	contentID := c.Query("content_id")
	if contentType == "" || contentID == "" {
		return response.NewError(http.StatusBadRequest, "缺少 content_type / content_id")
	}

	resp, err := h.RatingService.GetRating(c.Request.Context(), uint64(userID), contentType, contentID)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// ListRatings 评分历史
func (h *Rating) ListRatings(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	var req types.ListRatingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.RatingService.ListRatings(c.Request.Context(), uint64(userID), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// DeleteRating 删除评分
func (h *Rating) DeleteRating(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	ratingID, err := strconv.ParseUint(c.Param("rating_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "rating_id 格式错误")
	}

	if err := h.RatingService.DeleteRating(c.Request.Context(), uint64(userID), ratingID); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
