package service

import (
	"context"

	"github.com/google/uuid"

	"reviews-backend/internal/domains/company/model"
)

// CompanyService exposes the company catalog. Reads are open to any
// authenticated caller; writes are reserved for staff and enforced at
// the routing layer.
type CompanyService interface {
	List(ctx context.Context) ([]model.CompanyResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.CompanyResponse, error)
	Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.CompanyResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateCompanyRequest) (*model.CompanyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
