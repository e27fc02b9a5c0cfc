package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Lexv0lk/marketplace/internal/pkg/jwt"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"
)

// NewAuthMiddleware verifies the bearer token and stores the caller's id and
// username on the gin context.
func NewAuthMiddleware(secret string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": codeUnauthorized, "errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": codeUnauthorized, "errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secret), parts[1])
		if err != nil {
			logger.Warn("failed to parse user token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": codeUnauthorized, "errors": "invalid token"})
			return
		}

		if claims.UserID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": codeUnauthorized, "errors": "token has no user"})
			return
		}

		c.Set(jwt.UserIDContextKey, claims.UserID)
		c.Set(jwt.UsernameContextKey, claims.Username)
		c.Next()
	}
}

func callerID(c *gin.Context) int64 {
	return c.GetInt64(jwt.UserIDContextKey)
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortBadRequest(c, "invalid "+name)
		return 0, false
	}

	return id, true
}
