package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviews-backend/internal/shared/requestctx"
	"reviews-backend/pkg/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := jwt.NewManager("test-secret", time.Hour)

	newRouter := func() (*gin.Engine, *requestctx.Context) {
		captured := &requestctx.Context{}
		router := gin.New()
		router.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
			*captured = RequestContext(c)
			c.Status(http.StatusOK)
		})
		return router, captured
	}

	t.Run("valid token passes and identifies the caller", func(t *testing.T) {
		router, captured := newRouter()
		identityID := uuid.New()
		token, err := manager.Generate(identityID.String(), "alice", false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		got, ok := captured.Caller.IdentityID()
		require.True(t, ok)
		assert.Equal(t, identityID, got)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router, _ := newRouter()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		router, _ := newRouter()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		router, _ := newRouter()
		other := jwt.NewManager("other-secret", time.Hour)
		token, err := other.Generate(uuid.New().String(), "alice", false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestStaffMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := jwt.NewManager("test-secret", time.Hour)

	router := gin.New()
	router.GET("/admin", AuthMiddleware(manager), StaffMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	request := func(isStaff bool) *httptest.ResponseRecorder {
		token, err := manager.Generate(uuid.New().String(), "someone", isStaff)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("staff identity passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, request(true).Code)
	})

	t.Run("ordinary identity is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, request(false).Code)
	})
}

func TestRequestContextAssembly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var captured requestctx.Context
	router := gin.New()
	router.GET("/echo", func(c *gin.Context) {
		captured = RequestContext(c)
		c.Status(http.StatusOK)
	})

	t.Run("anonymous request with forwarding header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.RemoteAddr = "142.0.0.1:52311"
		req.Header.Set("X-Forwarded-For", "192.0.0.1, 10.0.0.1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.True(t, captured.Caller.IsAnonymous())
		assert.Equal(t, "192.0.0.1", captured.ClientIP())
	})

	t.Run("direct request uses the peer address without port", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.RemoteAddr = "142.0.0.1:52311"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "142.0.0.1", captured.ClientIP())
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates an id when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("honors an inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Recovery())
	router.GET("/boom", func(*gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Same envelope and code as every other error response.
	assert.Contains(t, rec.Body.String(), "INTERNAL_SERVER_ERROR")
	assert.NotContains(t, rec.Body.String(), "kaboom")
}
