package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviews-backend/internal/domains/reviewer/model"
	"reviews-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const uniqueViolation = "23505"

func (r *postgresRepository) CreateWithProfile(
	ctx context.Context,
	identity *model.Identity,
	profile *model.Profile,
) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		identityQuery := `
			INSERT INTO identities (
				id, username, password_hash, first_name, last_name,
				email, is_active, is_staff, date_joined
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		if _, err := tx.Exec(ctx, identityQuery,
			identity.ID,
			identity.Username,
			identity.PasswordHash,
			identity.FirstName,
			identity.LastName,
			identity.Email,
			identity.IsActive,
			identity.IsStaff,
			identity.DateJoined,
		); err != nil {
			return err
		}

		profileQuery := `
			INSERT INTO profiles (id, identity_id, bio, website)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.Exec(ctx, profileQuery,
			profile.ID,
			profile.IdentityID,
			profile.Bio,
			profile.Website,
		); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create reviewer: %w", err)
	}

	return nil
}

func (r *postgresRepository) UpdateWithProfile(
	ctx context.Context,
	identity *model.Identity,
	profile *model.Profile,
) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		identityQuery := `
			UPDATE identities
			SET username = $2, password_hash = $3, first_name = $4,
			    last_name = $5, email = $6
			WHERE id = $1
		`
		result, err := tx.Exec(ctx, identityQuery,
			identity.ID,
			identity.Username,
			identity.PasswordHash,
			identity.FirstName,
			identity.LastName,
			identity.Email,
		)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return model.ErrReviewerNotFound
		}

		profileQuery := `
			UPDATE profiles
			SET bio = $2, website = $3
			WHERE identity_id = $1
		`
		if _, err := tx.Exec(ctx, profileQuery,
			profile.IdentityID,
			profile.Bio,
			profile.Website,
		); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrReviewerNotFound) {
			return model.ErrReviewerNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("failed to update reviewer: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Reviewer, error) {
	query := `
		SELECT
			i.id, i.username, i.password_hash, i.first_name, i.last_name,
			i.email, i.is_active, i.is_staff, i.date_joined,
			p.id, p.identity_id, p.bio, p.website
		FROM identities i
		JOIN profiles p ON p.identity_id = i.id
		WHERE i.id = $1
	`

	reviewer := &model.Reviewer{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&reviewer.Identity.ID,
		&reviewer.Identity.Username,
		&reviewer.Identity.PasswordHash,
		&reviewer.Identity.FirstName,
		&reviewer.Identity.LastName,
		&reviewer.Identity.Email,
		&reviewer.Identity.IsActive,
		&reviewer.Identity.IsStaff,
		&reviewer.Identity.DateJoined,
		&reviewer.Profile.ID,
		&reviewer.Profile.IdentityID,
		&reviewer.Profile.Bio,
		&reviewer.Profile.Website,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewerNotFound
		}
		return nil, fmt.Errorf("failed to get reviewer: %w", err)
	}

	return reviewer, nil
}

func (r *postgresRepository) GetIdentityByUsername(ctx context.Context, username string) (*model.Identity, error) {
	query := `
		SELECT id, username, password_hash, first_name, last_name,
		       email, is_active, is_staff, date_joined
		FROM identities
		WHERE username = $1
	`

	identity := &model.Identity{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&identity.ID,
		&identity.Username,
		&identity.PasswordHash,
		&identity.FirstName,
		&identity.LastName,
		&identity.Email,
		&identity.IsActive,
		&identity.IsStaff,
		&identity.DateJoined,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewerNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

func (r *postgresRepository) GetProfileByIdentity(ctx context.Context, identityID uuid.UUID) (*model.Profile, error) {
	query := `
		SELECT id, identity_id, bio, website
		FROM profiles
		WHERE identity_id = $1
	`

	profile := &model.Profile{}
	err := r.pool.QueryRow(ctx, query, identityID).Scan(
		&profile.ID,
		&profile.IdentityID,
		&profile.Bio,
		&profile.Website,
	)

	if err != nil {
		// No profile is a normal state, not a fault
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}
