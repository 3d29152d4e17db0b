package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviews-backend/internal/domains/company/model"
	"reviews-backend/pkg/cache"
	"reviews-backend/pkg/logger"
)

type postgresCompanyRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresCompanyRepository(pool *pgxpool.Pool, cache cache.Cache) CompanyRepository {
	return &postgresCompanyRepository{pool: pool, cache: cache}
}

const (
	foreignKeyViolation = "23503"

	companyListKey  = "companies:all"
	companyCacheTTL = 5 * time.Minute
)

func companyKey(id uuid.UUID) string {
	return fmt.Sprintf("company:%s", id)
}

// List reads the full company collection, cache-aside. Cache failures are
// logged and fall through to the database.
func (r *postgresCompanyRepository) List(ctx context.Context) ([]*model.Company, error) {
	var cached []*model.Company
	if found, err := r.cache.Get(ctx, companyListKey, &cached); err != nil {
		logger.Error("company list cache read failed", err)
	} else if found {
		return cached, nil
	}

	query := `SELECT id, name, website FROM companies ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*model.Company
	for rows.Next() {
		company := &model.Company{}
		if err := rows.Scan(&company.ID, &company.Name, &company.Website); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}

	if err := r.cache.Set(ctx, companyListKey, companies, companyCacheTTL); err != nil {
		logger.Error("company list cache write failed", err)
	}

	return companies, nil
}

func (r *postgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var cached model.Company
	if found, err := r.cache.Get(ctx, companyKey(id), &cached); err != nil {
		logger.Error("company cache read failed", err)
	} else if found {
		return &cached, nil
	}

	query := `SELECT id, name, website FROM companies WHERE id = $1`

	company := &model.Company{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&company.ID, &company.Name, &company.Website)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	if err := r.cache.Set(ctx, companyKey(id), company, companyCacheTTL); err != nil {
		logger.Error("company cache write failed", err)
	}

	return company, nil
}

func (r *postgresCompanyRepository) Create(ctx context.Context, company *model.Company) error {
	query := `INSERT INTO companies (id, name, website) VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, company.ID, company.Name, company.Website); err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	r.invalidate(ctx, company.ID)
	return nil
}

func (r *postgresCompanyRepository) Update(ctx context.Context, company *model.Company) error {
	query := `UPDATE companies SET name = $2, website = $3 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, company.ID, company.Name, company.Website)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCompanyNotFound
	}

	r.invalidate(ctx, company.ID)
	return nil
}

func (r *postgresCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM companies WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return model.ErrCompanyProtected
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCompanyNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresCompanyRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, companyListKey, companyKey(id)); err != nil {
		logger.Error("company cache invalidation failed", err)
	}
}
