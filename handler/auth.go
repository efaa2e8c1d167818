package handler

import (
	"Rately/pkg/context"
	"Rately/pkg/response"
	"Rately/service"
	"Rately/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
}

// Register 邮箱注册
func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	token, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, token)
	return nil
}

// Login 邮箱登录
func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	token, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, token)
	return nil
}
