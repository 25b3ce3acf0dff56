package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mubashirjatoi/todo-api/internal/config"
	"github.com/mubashirjatoi/todo-api/internal/pkg/response"
	"github.com/mubashirjatoi/todo-api/internal/pkg/token"
)

// Auth validates the bearer token and stores the caller's identity in the
// gin context. Handlers behind it can rely on "userID" being set.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		// Support both "Bearer <token>" (case-insensitive) and raw token in header
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := token.Validate(tokenString, cfg.JWTSecret)
		if err != nil {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
