package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"reviews-backend/internal/domains/company/model"
	"reviews-backend/internal/domains/company/repository"
)

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) List(ctx context.Context) ([]model.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, company.ToResponse())
	}
	return responses, nil
}

func (s *companyService) Get(ctx context.Context, id uuid.UUID) (*model.CompanyResponse, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrCompanyNotFound) {
			return nil, model.NewCompanyNotFoundError()
		}
		return nil, err
	}

	resp := company.ToResponse()
	return &resp, nil
}

func (s *companyService) Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	company := &model.Company{
		ID:      uuid.New(),
		Name:    req.Name,
		Website: req.Website,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	resp := company.ToResponse()
	return &resp, nil
}

func (s *companyService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCompanyRequest) (*model.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrCompanyNotFound) {
			return nil, model.NewCompanyNotFoundError()
		}
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Website != nil {
		company.Website = req.Website
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, model.ErrCompanyNotFound) {
			return nil, model.NewCompanyNotFoundError()
		}
		return nil, err
	}

	resp := company.ToResponse()
	return &resp, nil
}

func (s *companyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, model.ErrCompanyNotFound):
			return model.NewCompanyNotFoundError()
		case errors.Is(err, model.ErrCompanyProtected):
			return model.NewCompanyProtectedError()
		}
		return err
	}
	return nil
}
