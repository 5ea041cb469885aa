package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"artisanhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Per-client budget: 200 requests per minute, burst of 40.
const (
	requestsPerMinute = 200
	burstSize         = 40
)

var (
	limitersMu sync.Mutex
	limiters   = make(map[string]*rate.Limiter)
)

func limiterFor(ip string) *rate.Limiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	l, ok := limiters[ip]
	if !ok {
		l = rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), burstSize)
		limiters[ip] = l
	}
	return l
}

// clientIP resolves the caller address, preferring proxy headers over the raw
// remote address.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// First entry is the originating client.
		if first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0]); first != "" {
			return first
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}

// RateLimitMiddleware applies a per-IP token bucket to every request.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !limiterFor(ip).Allow() {
			utils.GetLogger().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
