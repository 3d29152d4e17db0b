package repository

import (
	"context"

	"github.com/google/uuid"

	"reviews-backend/internal/domains/review/model"
)

// ReviewRepository is the data access contract for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error

	// GetByID returns the review or ErrReviewNotFound. Ownership is not
	// checked here; the service applies the reviewer scope.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)

	// ListByReviewer returns all reviews authored via the given profile,
	// newest first.
	ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]*model.Review, error)

	// Update persists the mutable fields (rating, title, summary).
	Update(ctx context.Context, review *model.Review) error

	Delete(ctx context.Context, id uuid.UUID) error
}
