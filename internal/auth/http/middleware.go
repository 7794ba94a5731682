package http

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/ordersaga/internal/auth/domain"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/httputil"
)

// Identity headers set by the API gateway after it validated the caller's token.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// AuthenticationMiddleware resolves the request principal from the gateway identity headers.
//
// The middleware:
// 1. Reads X-User-ID and parses it as a positive integer
// 2. Reads X-User-Role, defaulting to USER when absent
// 3. Stores the principal in the request context for GetPrincipal()
//
// Error handling:
//   - Missing X-User-ID → 401 Unauthorized
//   - Non-numeric or non-positive X-User-ID → 401 Unauthorized
//
// Usage:
//
//	v1 := router.Group("/v1", AuthenticationMiddleware(logger))
//	v1.GET("/orders/:id", func(c *gin.Context) {
//	    principal, _ := GetPrincipal(c.Request.Context())
//	    // principal.UserID, principal.IsAdmin()
//	})
func AuthenticationMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawUserID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if rawUserID == "" {
			logger.Debug("authentication failed: missing user id header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil || userID <= 0 {
			logger.Debug("authentication failed: invalid user id header",
				slog.String("header", rawUserID))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		role := strings.ToUpper(strings.TrimSpace(c.GetHeader(HeaderUserRole)))
		if role == "" {
			role = authDomain.RoleUser
		}

		principal := &authDomain.Principal{UserID: userID, Role: role}
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		c.Next()
	}
}

// RequireAdmin rejects principals without the ADMIN role.
//
// MUST be used after AuthenticationMiddleware.
//
// Error handling:
//   - No principal in context → 401 Unauthorized
//   - Principal is not an admin → 403 Forbidden
func RequireAdmin(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			logger.Debug("authorization failed: no principal in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !principal.IsAdmin() {
			logger.Debug("authorization failed: admin role required",
				slog.Int64("user_id", principal.UserID),
				slog.String("role", principal.Role),
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
