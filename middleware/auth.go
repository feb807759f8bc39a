package middleware

import (
	"net/http"
	"strings"

	"Quill/pkg/context"
	"Quill/pkg/jwt"
	"Quill/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 解析 Bearer token，把用户身份放进请求上下文。
// token 不合法的请求到不了任何 handler。
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		claims, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxEmail, claims.Email)

		c.Next()
	}
}
