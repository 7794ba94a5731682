package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func newRateLimitedRouter(ctx context.Context, rps float64, burst int) *gin.Engine {
	router := gin.New()
	router.Use(AuthenticationMiddleware(discardLogger()))
	router.Use(RateLimitMiddleware(ctx, rps, burst, discardLogger()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func sendAs(router *gin.Engine, userID int64) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderUserID, strconv.FormatInt(userID, 10))
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	router := newRateLimitedRouter(ctx, 10.0, 20)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, sendAs(router, 42).Code)
	}
}

func TestRateLimitMiddleware_BlocksRequestsExceedingLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	router := newRateLimitedRouter(ctx, 1.0, 2)

	assert.Equal(t, http.StatusOK, sendAs(router, 42).Code)
	assert.Equal(t, http.StatusOK, sendAs(router, 42).Code)

	w := sendAs(router, 42)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimitMiddleware_IndependentLimitsPerUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	router := newRateLimitedRouter(ctx, 1.0, 1)

	assert.Equal(t, http.StatusOK, sendAs(router, 1).Code)
	assert.Equal(t, http.StatusTooManyRequests, sendAs(router, 1).Code)
	assert.Equal(t, http.StatusOK, sendAs(router, 2).Code)
}

func TestRateLimitMiddleware_RequiresPrincipal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := gin.New()
	router.Use(RateLimitMiddleware(ctx, 10, 20, discardLogger()))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimiterStore_RemoveIdleSince(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}
	store.getLimiter(1)
	store.getLimiter(2)

	entry, _ := store.limiters.Load(int64(1))
	entry.(*rateLimiterEntry).lastAccess.Store(time.Now().Add(-2 * time.Hour).UnixNano())

	store.removeIdleSince(time.Now().Add(-time.Hour))

	_, ok := store.limiters.Load(int64(1))
	assert.False(t, ok)
	_, ok = store.limiters.Load(int64(2))
	assert.True(t, ok)
}

func TestRateLimitMiddleware_CleanupStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	_ = RateLimitMiddleware(ctx, 1, 1, discardLogger())
	cancel()
	time.Sleep(20 * time.Millisecond)
}
