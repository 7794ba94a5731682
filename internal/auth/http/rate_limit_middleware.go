package http

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/httputil"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTTL       = time.Hour
)

// rateLimiterStore holds one token bucket per user id.
type rateLimiterStore struct {
	limiters sync.Map // int64 -> *rateLimiterEntry
	rps      float64
	burst    int
}

type rateLimiterEntry struct {
	limiter *rate.Limiter
	// lastAccess is unix nanoseconds.
	lastAccess atomic.Int64
}

// RateLimitMiddleware throttles each authenticated user with a token bucket of rps and
// burst. It must run after AuthenticationMiddleware. Over-limit requests get 429 with
// Retry-After in whole seconds. Idle buckets are swept until ctx is done.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &rateLimiterStore{rps: rps, burst: burst}
	go store.sweep(ctx, limiterSweepInterval)

	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			logger.Error("rate limit middleware: no principal in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		limiter := store.getLimiter(principal.UserID)
		if limiter.Allow() {
			c.Next()
			return
		}

		retryAfter := retryAfterSeconds(limiter)
		logger.Debug("rate limit exceeded",
			slog.Int64("user_id", principal.UserID),
			slog.Int("retry_after", retryAfter),
		)

		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
			Error:   "rate_limit_exceeded",
			Message: "Too many requests, retry after the indicated delay",
		})
	}
}

// retryAfterSeconds is the wait until limiter frees a token, rounded up to at least one second.
func retryAfterSeconds(limiter *rate.Limiter) int {
	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()
	return max(1, int(math.Ceil(delay.Seconds())))
}

func (s *rateLimiterStore) getLimiter(userID int64) *rate.Limiter {
	now := time.Now().UnixNano()
	if val, ok := s.limiters.Load(userID); ok {
		entry := val.(*rateLimiterEntry)
		entry.lastAccess.Store(now)
		return entry.limiter
	}

	entry := &rateLimiterEntry{limiter: rate.NewLimiter(rate.Limit(s.rps), s.burst)}
	entry.lastAccess.Store(now)

	actual, _ := s.limiters.LoadOrStore(userID, entry)
	return actual.(*rateLimiterEntry).limiter
}

func (s *rateLimiterStore) sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.removeIdleSince(time.Now().Add(-limiterIdleTTL))
		}
	}
}

func (s *rateLimiterStore) removeIdleSince(threshold time.Time) {
	cutoff := threshold.UnixNano()
	s.limiters.Range(func(key, value any) bool {
		if value.(*rateLimiterEntry).lastAccess.Load() < cutoff {
			s.limiters.Delete(key)
		}
		return true
	})
}
