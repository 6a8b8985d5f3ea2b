package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nebasjoa/rentable/internal/server/auth"
)

const (
	ctxUserEmail    = "user_email"
	requestIDHeader = "X-Request-Id"
)

// RequireAuth verifies the bearer token and stores the subject email in the
// request context. Token verification is stateless; only the signing secret
// is needed.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": kindInvalidToken})
			return
		}

		email, err := auth.SubjectFromToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": kindInvalidToken})
			return
		}

		c.Set(ctxUserEmail, email)
		c.Next()
	}
}

// RequestID echoes an incoming X-Request-Id or assigns a fresh one, so log
// lines and responses can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if strings.TrimSpace(rid) == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}
