package middleware

import (
	"github.com/evanhugh/assistant-hub-service/pkg/app"
	"github.com/evanhugh/assistant-hub-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// UserAuthTokenWithConfig 用户 Token 认证中间件（使用注入的密钥）
func UserAuthTokenWithConfig(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		response := app.NewResponse(c)

		if s, exist := c.GetQuery("authorization"); exist {
			token = s
		} else if s, exist := c.GetQuery("Authorization"); exist {
			token = s
		} else if s := c.GetHeader("authorization"); len(s) != 0 {
			token = s
		} else if s := c.GetHeader("Authorization"); len(s) != 0 {
			token = s
		} else if s, exist := c.GetQuery("token"); exist {
			token = s
		} else if s, exist := c.GetQuery("Token"); exist {
			token = s
		} else if s = c.GetHeader("token"); len(s) != 0 {
			token = s
		} else if s = c.GetHeader("Token"); len(s) != 0 {
			token = s
		}

		if token == "" {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		if user, err := app.ParseTokenWithKey(token, secretKey); err != nil {
			response.ToResponse(code.ErrorInvalidUserAuthToken)
			c.Abort()
			return
		} else {
			c.Set("user_token", user)
		}

		c.Next()
	}
}

// UserAuthTokenOptional parses the token when present but never rejects the
// request: resources with public visibility are readable anonymously, and the
// authorization engine treats uid 0 as the anonymous principal.
// UserAuthTokenOptional 存在 Token 时解析，但从不拒绝请求：公开可见的资源
// 允许匿名读取，访问决策引擎将 uid 0 视为匿名主体。
func UserAuthTokenOptional(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		if s := c.GetHeader("Authorization"); len(s) != 0 {
			token = s
		} else if s := c.GetHeader("authorization"); len(s) != 0 {
			token = s
		} else if s := c.GetHeader("Token"); len(s) != 0 {
			token = s
		} else if s, exist := c.GetQuery("token"); exist {
			token = s
		}

		if token != "" {
			if user, err := app.ParseTokenWithKey(token, secretKey); err == nil {
				c.Set("user_token", user)
			}
		}

		c.Next()
	}
}
