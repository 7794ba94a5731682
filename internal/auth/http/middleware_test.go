package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/ordersaga/internal/auth/domain"
	"github.com/allisson/ordersaga/internal/httputil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	chain := append([]gin.HandlerFunc{AuthenticationMiddleware(discardLogger())}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": principal.UserID, "role": principal.Role})
	})
	router.GET("/test", chain...)
	return router
}

func TestAuthenticationMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		headers        map[string]string
		expectedStatus int
		expectedRole   string
	}{
		{
			name:           "valid user with role",
			headers:        map[string]string{HeaderUserID: "42", HeaderUserRole: "admin"},
			expectedStatus: http.StatusOK,
			expectedRole:   authDomain.RoleAdmin,
		},
		{
			name:           "role defaults to USER",
			headers:        map[string]string{HeaderUserID: "42"},
			expectedStatus: http.StatusOK,
			expectedRole:   authDomain.RoleUser,
		},
		{
			name:           "missing user id",
			headers:        map[string]string{HeaderUserRole: "ADMIN"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-numeric user id",
			headers:        map[string]string{HeaderUserID: "abc"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-positive user id",
			headers:        map[string]string{HeaderUserID: "0"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, float64(42), response["user_id"])
				assert.Equal(t, tt.expectedRole, response["role"])
			} else {
				var response httputil.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "unauthorized", response.Error)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		router := newAuthRouter(RequireAdmin(discardLogger()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderUserID, "1")
		req.Header.Set(HeaderUserRole, "ADMIN")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		router := newAuthRouter(RequireAdmin(discardLogger()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderUserID, "42")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no principal is unauthorized", func(t *testing.T) {
		router := gin.New()
		router.GET("/test", RequireAdmin(discardLogger()), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
