package service

import (
	"context"

	"github.com/google/uuid"

	"reviews-backend/internal/domains/review/model"
	reviewer "reviews-backend/internal/domains/reviewer/model"
	"reviews-backend/internal/shared/requestctx"
)

// ProfileResolver resolves a caller identity to its reviewer profile.
// A missing profile yields (nil, nil). Satisfied by the reviewer
// repository.
type ProfileResolver interface {
	GetProfileByIdentity(ctx context.Context, identityID uuid.UUID) (*reviewer.Profile, error)
}

// Service is the business logic contract for reviews.
type Service interface {
	// List returns the caller's own reviews. Callers without a resolvable
	// profile get an empty list, never an error.
	List(ctx context.Context, rctx requestctx.Context) ([]model.ReviewResponse, error)

	// Create authors a review as the caller. The reviewer reference and
	// submitter IP are derived from rctx; derivation failures reject the
	// operation before any record is constructed.
	Create(ctx context.Context, rctx requestctx.Context, req model.CreateReviewRequest) (*model.ReviewResponse, error)

	// Get/Update/Delete operate on the caller's own reviews only.
	// Non-owned or missing targets surface as not-found.
	Get(ctx context.Context, rctx requestctx.Context, id uuid.UUID) (*model.ReviewResponse, error)
	Update(ctx context.Context, rctx requestctx.Context, id uuid.UUID, req model.UpdateReviewRequest) (*model.ReviewResponse, error)
	Delete(ctx context.Context, rctx requestctx.Context, id uuid.UUID) error
}
