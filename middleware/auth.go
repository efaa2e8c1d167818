package middleware

import (
	"net/http"
	"strings"

	"Rately/config"
	"Rately/pkg/jwt"
	"Rately/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth Bearer 令牌鉴权，通过后把 user_id 写入请求上下文
func Auth(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.Jwt.Secret)

	// 本地调试放行开关只在非 prod 环境生效
	bypass := cfg.App.AuthBypass && cfg.App.Env != "prod"

	return func(c *gin.Context) {
		if bypass {
			c.Set("user_id", int64(cfg.App.AuthBypassUserID))
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set("user_id", int64(claims.UserID))

		c.Next()
	}
}
