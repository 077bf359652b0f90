package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware checks the "ApiKey <key>" Authorization header against static keys
type APIKeyMiddleware struct {
	keys []string
}

// NewAPIKeyMiddleware creates the middleware. With no keys every request passes.
func NewAPIKeyMiddleware(keys []string) *APIKeyMiddleware {
	var cleaned []string
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	return &APIKeyMiddleware{keys: cleaned}
}

// Enabled reports whether any key is configured
func (m *APIKeyMiddleware) Enabled() bool {
	return len(m.keys) > 0
}

func (m *APIKeyMiddleware) valid(key string) bool {
	for _, k := range m.keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true
		}
	}
	return false
}

// APIKeyAuthMiddleware rejects requests without a configured API key
func (m *APIKeyMiddleware) APIKeyAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Enabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization header is required",
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "ApiKey ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization header must use the ApiKey scheme",
			})
			c.Abort()
			return
		}

		apiKey := strings.TrimPrefix(authHeader, "ApiKey ")
		if apiKey == "" || !m.valid(apiKey) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid API key",
			})
			c.Abort()
			return
		}

		c.Set("auth_type", "api_key")
		c.Next()
	}
}
