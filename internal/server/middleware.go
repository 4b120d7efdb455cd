package server

import (
	"net/http"
	"strings"
	"time"

	"auction-house/internal/credentials"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// RequireAuth validates the bearer token and stores the caller's user ID
// in the request context under "user_id".
func RequireAuth(tokens *credentials.TokenIssuer) gin.HandlerFunc {
	const prefix = "Bearer "

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			utils.Warn("RequireAuth: token rejected", map[string]any{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
