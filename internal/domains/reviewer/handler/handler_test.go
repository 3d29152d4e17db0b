package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviews-backend/internal/domains/reviewer/model"
	"reviews-backend/internal/domains/reviewer/service"
	"reviews-backend/internal/shared/middleware"
	"reviews-backend/pkg/jwt"
)

type memRepo struct {
	identities map[uuid.UUID]*model.Identity
	profiles   map[uuid.UUID]*model.Profile
}

func newMemRepo() *memRepo {
	return &memRepo{
		identities: make(map[uuid.UUID]*model.Identity),
		profiles:   make(map[uuid.UUID]*model.Profile),
	}
}

func (m *memRepo) CreateWithProfile(_ context.Context, identity *model.Identity, profile *model.Profile) error {
	for _, existing := range m.identities {
		if existing.Username == identity.Username {
			return model.ErrUsernameTaken
		}
	}
	idClone, profClone := *identity, *profile
	m.identities[identity.ID] = &idClone
	m.profiles[identity.ID] = &profClone
	return nil
}

func (m *memRepo) UpdateWithProfile(_ context.Context, identity *model.Identity, profile *model.Profile) error {
	if _, ok := m.identities[identity.ID]; !ok {
		return model.ErrReviewerNotFound
	}
	idClone, profClone := *identity, *profile
	m.identities[identity.ID] = &idClone
	m.profiles[identity.ID] = &profClone
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Reviewer, error) {
	identity, ok := m.identities[id]
	if !ok {
		return nil, model.ErrReviewerNotFound
	}
	return &model.Reviewer{Identity: *identity, Profile: *m.profiles[id]}, nil
}

func (m *memRepo) GetIdentityByUsername(_ context.Context, username string) (*model.Identity, error) {
	for _, identity := range m.identities {
		if identity.Username == username {
			clone := *identity
			return &clone, nil
		}
	}
	return nil, model.ErrReviewerNotFound
}

func (m *memRepo) GetProfileByIdentity(_ context.Context, identityID uuid.UUID) (*model.Profile, error) {
	profile, ok := m.profiles[identityID]
	if !ok {
		return nil, nil
	}
	clone := *profile
	return &clone, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret", time.Hour)
	h := NewReviewerHandler(service.NewReviewerService(newMemRepo()), manager)

	router := gin.New()
	router.POST("/token-auth/", h.TokenAuth)
	router.POST("/reviewers/", h.Register)

	authed := router.Group("/reviewers", middleware.AuthMiddleware(manager))
	authed.GET("/:id/", h.Get)
	authed.PUT("/:id/", h.Update)
	authed.PATCH("/:id/", h.Update)

	return router
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, router *gin.Engine, username string) model.ReviewerResponse {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/reviewers/", "", gin.H{
		"username": username,
		"password": "s3cretpass",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Data model.ReviewerResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/token-auth/", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data.Token
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("creates an account and hides the password", func(t *testing.T) {
		router := newTestRouter()

		rec := doJSON(router, http.MethodPost, "/reviewers/", "", gin.H{
			"username":   "alice",
			"first_name": "Alice",
			"password":   "s3cretpass",
			"bio":        "writes reviews",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "s3cretpass")
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		router := newTestRouter()
		register(t, router, "alice")

		rec := doJSON(router, http.MethodPost, "/reviewers/", "", gin.H{
			"username": "alice",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid payload names the field", func(t *testing.T) {
		router := newTestRouter()

		rec := doJSON(router, http.MethodPost, "/reviewers/", "", gin.H{
			"username": "alice",
			"email":    "nope",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "email")
	})
}

func TestTokenAuthEndpoint(t *testing.T) {
	t.Run("valid credentials yield a token", func(t *testing.T) {
		router := newTestRouter()
		register(t, router, "alice")

		token := login(t, router, "alice", "s3cretpass")
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		router := newTestRouter()
		register(t, router, "alice")

		rec := doJSON(router, http.MethodPost, "/token-auth/", "", gin.H{
			"username": "alice",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("account registered without a password cannot log in", func(t *testing.T) {
		router := newTestRouter()

		rec := doJSON(router, http.MethodPost, "/reviewers/", "", gin.H{"username": "nopass"})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(router, http.MethodPost, "/token-auth/", "", gin.H{
			"username": "nopass",
			"password": "",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing credentials are a validation error", func(t *testing.T) {
		router := newTestRouter()

		rec := doJSON(router, http.MethodPost, "/token-auth/", "", gin.H{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReviewerSelfScope(t *testing.T) {
	t.Run("caller reads and updates only their own record", func(t *testing.T) {
		router := newTestRouter()
		alice := register(t, router, "alice")
		bob := register(t, router, "bob")
		token := login(t, router, "alice", "s3cretpass")

		rec := doJSON(router, http.MethodGet, fmt.Sprintf("/reviewers/%s/", alice.ID), token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(router, http.MethodGet, fmt.Sprintf("/reviewers/%s/", bob.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(router, http.MethodPatch, fmt.Sprintf("/reviewers/%s/", alice.ID), token, gin.H{
			"bio": "updated bio",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "updated bio")

		rec = doJSON(router, http.MethodPatch, fmt.Sprintf("/reviewers/%s/", bob.ID), token, gin.H{
			"bio": "hijacked",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no token is unauthorized", func(t *testing.T) {
		router := newTestRouter()
		alice := register(t, router, "alice")

		rec := doJSON(router, http.MethodGet, fmt.Sprintf("/reviewers/%s/", alice.ID), "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		router := newTestRouter()
		alice := register(t, router, "alice")

		rec := doJSON(router, http.MethodGet, fmt.Sprintf("/reviewers/%s/", alice.ID), "not.a.token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
