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

type Like struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config)
	g := r.Group("/v1/reviews")
	g.POST("/:rating_id/like", authorize, context.Wrap(h.LikeReview))
	g.DELETE("/:rating_id/like", authorize, context.Wrap(h.UnlikeReview))
	g.GET("/:rating_id/like", authorize, context.Wrap(h.GetLikeStatus))
	g.GET("/:rating_id/like/count", context.Wrap(h.GetLikeCount))
}

func parseRatingIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("rating_id"), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "rating_id 格式错误")
	}
	return id, nil
}

// LikeReview 点赞短评
func (h *Like) LikeReview(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	ratingID, err := parseRatingIDParam(c)
	if err != nil {
		return err
	}

	if err := h.LikeService.LikeReview(c.Request.Context(), uint64(userID), ratingID); err != nil {
		return err
	}

	response.Success(c, gin.H{"liked": true})
	return nil
}

// UnlikeReview 取消点赞
func (h *Like) UnlikeReview(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	ratingID, err := parseRatingIDParam(c)
	if err != nil {
		return err
	}

	if err := h.LikeService.UnlikeReview(c.Request.Context(), uint64(userID), ratingID); err != nil {
		return err
	}

	response.Success(c, gin.H{"liked": false})
	return nil
}

// GetLikeStatus 查询自己是否点过赞
func (h *Like) GetLikeStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return types.ErrNotAuthenticated
	}

	ratingID, err := parseRatingIDParam(c)
	if err != nil {
		return err
	}

	liked, err := h.LikeService.IsLiked(c.Request.Context(), uint64(userID), ratingID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"liked": liked})
	return nil
}

// GetLikeCount 点赞数
func (h *Like) GetLikeCount(c *gin.Context) error {
	ratingID, err := parseRatingIDParam(c)
	if err != nil {
		return err
	}

	count, err := h.LikeService.GetLikeCount(c.Request.Context(), ratingID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"count": count})
	return nil
}
