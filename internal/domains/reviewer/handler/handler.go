package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"reviews-backend/internal/domains/reviewer/model"
	"reviews-backend/internal/domains/reviewer/service"
	"reviews-backend/internal/shared/middleware"
	"reviews-backend/internal/shared/response"
	"reviews-backend/pkg/jwt"
)

type ReviewerHandler struct {
	reviewerService service.Service
	jwtManager      *jwt.Manager
}

func NewReviewerHandler(reviewerService service.Service, jwtManager *jwt.Manager) *ReviewerHandler {
	return &ReviewerHandler{
		reviewerService: reviewerService,
		jwtManager:      jwtManager,
	}
}

// TokenAuthRequest is the credential exchange payload.
type TokenAuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r TokenAuthRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenAuth exchanges username+password for a bearer token.
// POST /token-auth/
func (h *ReviewerHandler) TokenAuth(c *gin.Context) {
	var req TokenAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	identity, err := h.reviewerService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		response.InternalServerError(c, "authentication failed")
		return
	}

	token, err := h.jwtManager.Generate(identity.ID.String(), identity.Username, identity.IsStaff)
	if err != nil {
		response.InternalServerError(c, "failed to issue token")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

// Register creates a new reviewer account.
// POST /reviewers/
func (h *ReviewerHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reviewerService.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Get returns the caller's own reviewer record.
// GET /reviewers/:id/
func (h *ReviewerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.reviewerService.Get(c.Request.Context(), middleware.RequestContext(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Update applies a partial update to the caller's own record.
// PUT/PATCH /reviewers/:id/
func (h *ReviewerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reviewerService.Update(c.Request.Context(), middleware.RequestContext(c), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid reviewer ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReviewerHandler) respondError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ValidationFailed(c, err)
		return
	}

	var domainErr *model.ReviewerError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeReviewerNotFound:
			response.NotFound(c, domainErr.Message)
		case model.ErrCodeUsernameTaken:
			response.Conflict(c, domainErr.Message)
		case model.ErrCodeInvalidCredentials:
			response.Unauthorized(c, domainErr.Message)
		default:
			response.InternalServerError(c, domainErr.Message)
		}
		return
	}

	response.InternalServerError(c, "internal error")
}
