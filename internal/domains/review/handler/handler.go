package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"reviews-backend/internal/domains/review/model"
	"reviews-backend/internal/domains/review/service"
	"reviews-backend/internal/shared/middleware"
	"reviews-backend/internal/shared/response"
)

type ReviewHandler struct {
	reviewService service.Service
}

func NewReviewHandler(reviewService service.Service) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List returns the caller's own reviews.
// GET /reviews/
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context(), middleware.RequestContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, reviews, &response.Meta{Total: len(reviews)})
}

// Create authors a new review owned by the caller.
// POST /reviews/
func (h *ReviewHandler) Create(c *gin.Context) {
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reviewService.Create(c.Request.Context(), middleware.RequestContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Get returns one of the caller's reviews.
// GET /reviews/:id/
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.reviewService.Get(c.Request.Context(), middleware.RequestContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Update edits one of the caller's reviews.
// PUT/PATCH /reviews/:id/
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reviewService.Update(c.Request.Context(), middleware.RequestContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete removes one of the caller's reviews.
// DELETE /reviews/:id/
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), middleware.RequestContext(c), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "review deleted"})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid review ID")
		return uuid.Nil, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ValidationFailed(c, err)
		return
	}

	var domainErr *model.ReviewError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeReviewNotFound:
			response.NotFound(c, domainErr.Message)
		case model.ErrCodeAnonymousCaller, model.ErrCodeNoReviewerProfile, model.ErrCodeCompanyUnknown:
			// Derivation failures are validation errors naming the field
			// they belong to.
			response.ErrorWithDetails(c, http.StatusBadRequest, domainErr.Code, domainErr.Message,
				gin.H{domainErr.Field: domainErr.Message})
		default:
			response.InternalServerError(c, domainErr.Message)
		}
		return
	}

	response.InternalServerError(c, "internal error")
}
