package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"reviews-backend/internal/domains/company/model"
	"reviews-backend/internal/domains/company/service"
	"reviews-backend/internal/shared/response"
)

type CompanyHandler struct {
	companyService service.CompanyService
}

func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// List returns all companies.
// GET /companies/
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, companies, &response.Meta{Total: len(companies)})
}

// Get returns a single company.
// GET /companies/:id/
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.companyService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Create adds a company to the catalog. Staff only.
// POST /admin/companies/
func (h *CompanyHandler) Create(c *gin.Context) {
	var req model.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Update edits a company. Staff only.
// PUT/PATCH /admin/companies/:id/
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete removes a company. Staff only. Refused with a conflict while
// any review still references the company.
// DELETE /admin/companies/:id/
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "company deleted"})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid company ID")
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

	var domainErr *model.CompanyError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeCompanyNotFound:
			response.NotFound(c, domainErr.Message)
		case model.ErrCodeCompanyProtected:
			response.Conflict(c, domainErr.Message)
		default:
			response.InternalServerError(c, domainErr.Message)
		}
		return
	}

	response.InternalServerError(c, "internal error")
}
