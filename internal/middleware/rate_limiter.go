package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adventcare/registry-backend/pkg/metrics"
)

// RateLimiter applies a fixed-window per-client-IP request limit.
type RateLimiter struct {
	clients map[string]*clientWindow
	mu      sync.Mutex
	logger  *logrus.Logger
	limit   int
	window  time.Duration
}

type clientWindow struct {
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new rate limiter allowing limit requests per
// window per client IP.
func NewRateLimiter(limit int, window time.Duration, logger *logrus.Logger) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientWindow),
		logger:  logger,
		limit:   limit,
		window:  window,
	}

	go rl.cleanup()

	return rl
}

// Middleware returns a gin middleware handler
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if !rl.allow(clientIP) {
			metrics.RateLimitedRequestsTotal.Inc()
			rl.logger.WithFields(logrus.Fields{
				"client_ip":  clientIP,
				"request_id": GetRequestID(c),
				"path":       c.Request.URL.Path,
			}).Warn("Rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        "RATE_LIMIT",
				"retry_after": rl.window.Seconds(),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, exists := rl.clients[clientIP]
	if !exists {
		client = &clientWindow{lastReset: time.Now()}
		rl.clients[clientIP] = client
	}

	if time.Since(client.lastReset) > rl.window {
		client.count = 0
		client.lastReset = time.Now()
	}

	if client.count >= rl.limit {
		return false
	}

	client.count++
	return true
}

// cleanup periodically drops windows that went idle
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, client := range rl.clients {
			if now.Sub(client.lastReset) > rl.window*2 {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}
