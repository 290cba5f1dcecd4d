package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-Id"

// clientHasher turns client IPs into salted, truncated hashes so logs and
// rate-limit keys never hold raw addresses. The salt lives for the process
// only.
type clientHasher struct {
	salt string
}

func newClientHasher() (*clientHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate hashing salt: %w", err)
	}
	return &clientHasher{salt: hex.EncodeToString(b)}, nil
}

func (h *clientHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// requestID reuses an incoming X-Request-Id or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}
		c.Set("request_id", rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

func skipAccessLog(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/metrics" ||
		path == "/healthz"
}

// accessLog logs each page or fragment request with a hashed client id.
// Requests carrying DNT: 1 are logged without the client id.
func accessLog(logger *zap.Logger, hasher *clientHasher, m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if m != nil {
			m.RequestDuration.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Observe(latency.Seconds())
		}

		path := c.Request.URL.Path
		if skipAccessLog(path) {
			return
		}
		fields := []zap.Field{
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, zap.String("client", hasher.hash(c.ClientIP())))
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

// rateLimiter keeps one token bucket per hashed client.
type rateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	limit       rate.Limit
	burst       int
	lastCleanup time.Time
}

func newRateLimiter(perSecond float64, burst int) *rateLimiter {
	return &rateLimiter{
		limiters:    make(map[string]*rate.Limiter),
		limit:       rate.Limit(perSecond),
		burst:       burst,
		lastCleanup: time.Now(),
	}
}

func (rl *rateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Drop idle buckets hourly so the map stays bounded.
	if time.Since(rl.lastCleanup) > time.Hour {
		rl.limiters = make(map[string]*rate.Limiter)
		rl.lastCleanup = time.Now()
	}
	l, ok := rl.limiters[key]
	if !ok {
		l = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = l
	}
	return l
}

func (s *Server) limitRate() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := s.hasher.hash(c.ClientIP())
		if !s.limiter.get(key).Allow() {
			s.logger.Warn("toggle rate limited", zap.String("client", key))
			c.Abort()
			s.renderError(c, http.StatusTooManyRequests, "Too many requests, slow down a little.")
			return
		}
		c.Next()
	}
}
