package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	authHTTP "github.com/allisson/ordersaga/internal/auth/http"
	"github.com/allisson/ordersaga/internal/config"
)

// corsMiddleware allows browser clients from the configured origins to call the
// participant API with the identity headers. It returns nil when CORS is disabled or
// no origin survives parsing.
func corsMiddleware(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	if !cfg.CORSEnabled {
		return nil
	}

	origins := parseOrigins(cfg.CORSAllowOrigins)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no origins configured, skipping")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Content-Type", authHTTP.HeaderUserID, authHTTP.HeaderUserRole},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// parseOrigins splits a comma-separated origin list, dropping blanks and duplicates.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	origins := lo.FilterMap(strings.Split(raw, ","), func(part string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(part)
		return trimmed, trimmed != ""
	})
	return lo.Uniq(origins)
}
