package service

import (
	"net/http"
	"strings"

	"tms/response"
	"tms/util"

	"github.com/gin-gonic/gin"
)

const userKey = "tms.user"

// AuthMiddleware verifies the Bearer token on mutating endpoints and
// stores the caller's identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.HTTPError(c, http.StatusUnauthorized, "missing bearer token", response.InvalidToken)
			c.Abort()
			return
		}

		msg, err := util.GetTokenMgr().CheckToken(token)
		if err != nil {
			response.HTTPError(c, http.StatusUnauthorized, "invalid or expired token", response.TokenExpired)
			c.Abort()
			return
		}

		c.Set(userKey, msg)
		c.Next()
	}
}

// CurrentUser returns the identity set by AuthMiddleware.
func CurrentUser(c *gin.Context) (util.JWTMessage, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return util.JWTMessage{}, false
	}
	msg, ok := v.(util.JWTMessage)
	return msg, ok
}
