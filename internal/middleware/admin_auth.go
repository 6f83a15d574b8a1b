package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminKeyHeader carries the shared moderation secret.
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth protects moderation endpoints with a shared secret compared
// in constant time. When no key is configured the endpoints stay open and
// a warning is logged on startup; this mirrors the original deployment,
// where an unset key meant an unprotected admin surface.
func AdminAuth(apiKey string, logger *logrus.Logger) gin.HandlerFunc {
	if apiKey == "" {
		logger.Warn("ADMIN_API_KEY not configured - admin endpoints are unprotected")
		return func(c *gin.Context) {
			c.Next()
		}
	}

	expected := []byte(apiKey)

	return func(c *gin.Context) {
		provided := []byte(c.GetHeader(AdminKeyHeader))

		if subtle.ConstantTimeCompare(provided, expected) != 1 {
			logger.WithFields(logrus.Fields{
				"request_id": GetRequestID(c),
				"client_ip":  c.ClientIP(),
				"path":       c.Request.URL.Path,
			}).Warn("Rejected request with invalid admin key")

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"code":    "INVALID_ADMIN_KEY",
				"details": "Valid admin key required in X-Admin-Key header",
			})
			return
		}

		c.Next()
	}
}
