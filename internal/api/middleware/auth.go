package middleware

import (
	"FitSphere/internal/pkg/consts"
	"FitSphere/internal/pkg/redis"
	"FitSphere/internal/pkg/response"
	"FitSphere/internal/pkg/security"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "missing or malformed token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "missing or malformed token")
			c.Abort()
			return
		}

		// 登出过的 token 在黑名单里；缓存不可用时放行走签名校验
		value, err := redis.GetValue(c.Request.Context(), consts.TokenBlacklistKey+signature)
		if err != nil && !errors.Is(err, redis.ErrNotReady) {
			response.Fail(c, http.StatusInternalServerError, "unexpected error, please retry later")
			c.Abort()
			return
		}
		if value != "" {
			response.Fail(c, http.StatusUnauthorized, "token invalid or expired")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "token invalid or expired")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
