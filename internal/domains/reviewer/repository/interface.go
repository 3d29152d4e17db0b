package repository

import (
	"context"

	"github.com/google/uuid"

	"reviews-backend/internal/domains/reviewer/model"
)

// Repository is the data access contract for the identity+profile pair.
type Repository interface {
	// CreateWithProfile persists the identity and its profile as a unit.
	// The pairing is a correctness invariant: an identity must never be
	// committed without its profile.
	CreateWithProfile(ctx context.Context, identity *model.Identity, profile *model.Profile) error

	// UpdateWithProfile persists changes to the identity and its profile as
	// a unit.
	UpdateWithProfile(ctx context.Context, identity *model.Identity, profile *model.Profile) error

	// GetByID returns the identity+profile pair, or ErrReviewerNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Reviewer, error)

	// GetIdentityByUsername returns the bare identity for authentication,
	// or ErrReviewerNotFound.
	GetIdentityByUsername(ctx context.Context, username string) (*model.Identity, error)

	// GetProfileByIdentity resolves an identity's profile. A missing
	// profile is a normal outcome and yields (nil, nil), not an error.
	GetProfileByIdentity(ctx context.Context, identityID uuid.UUID) (*model.Profile, error)
}
