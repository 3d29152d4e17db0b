package repository

import (
	"context"

	"github.com/google/uuid"

	"reviews-backend/internal/domains/company/model"
)

// CompanyRepository is the data access contract for companies.
type CompanyRepository interface {
	List(ctx context.Context) ([]*model.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error

	// Delete removes a company. Returns ErrCompanyProtected while any
	// review still references it.
	Delete(ctx context.Context, id uuid.UUID) error
}
