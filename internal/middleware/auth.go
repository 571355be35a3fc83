package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"social-network-backend/internal/service"
	"social-network-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdentityMiddleware 从会话 Cookie 或 Authorization 头解析身份并放入请求上下文。
// 令牌无效或用户不存在时按匿名访问者处理，不在这里拦截。
func IdentityMiddleware(userService service.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		tokenString := sessionToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		userID, err := util.ValidateToken(tokenString)
		if err != nil {
			util.Logger.Debug("会话令牌无效", zap.Error(err))
			c.Next()
			return
		}

		user, err := userService.GetUserByID(userID)
		if err != nil {
			util.Logger.Debug("会话用户不存在", zap.Int("user_id", userID))
			c.Next()
			return
		}

		c.Set(identityKey, userIdentity{user: user})
		c.Next()
	}
}

// RequireAuth 要求已认证身份，否则重定向到登录页
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).IsAuthenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// sessionToken 先取会话 Cookie，再退回 Bearer 头
func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(util.SessionCookie); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
