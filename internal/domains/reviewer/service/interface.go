package service

import (
	"context"

	"github.com/google/uuid"

	"reviews-backend/internal/domains/reviewer/model"
	"reviews-backend/internal/shared/requestctx"
)

// Service is the business logic contract for reviewer accounts.
type Service interface {
	// Register creates an identity with its paired profile. Open to anyone.
	Register(ctx context.Context, req model.RegisterRequest) (*model.ReviewerResponse, error)

	// Get returns the reviewer only when the caller is that reviewer;
	// anyone else (including anonymous) sees not-found.
	Get(ctx context.Context, rctx requestctx.Context, id uuid.UUID) (*model.ReviewerResponse, error)

	// Update applies a partial update to the caller's own identity+profile
	// pair. Non-owned targets surface as not-found.
	Update(ctx context.Context, rctx requestctx.Context, id uuid.UUID, req model.UpdateRequest) (*model.ReviewerResponse, error)

	// Authenticate checks username+password for the token-auth endpoint.
	Authenticate(ctx context.Context, username, password string) (*model.Identity, error)
}
