package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"reviews-backend/internal/domains/reviewer/model"
	"reviews-backend/internal/domains/reviewer/repository"
	"reviews-backend/internal/shared/requestctx"
)

const bcryptCost = 12

type reviewerService struct {
	repo repository.Repository
}

func NewReviewerService(repo repository.Repository) Service {
	return &reviewerService{repo: repo}
}

// Register creates the identity and its profile as one unit. Validation
// happens before anything touches the store; a rejected payload mutates
// nothing.
func (s *reviewerService) Register(ctx context.Context, req model.RegisterRequest) (*model.ReviewerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	identity := &model.Identity{
		ID:         uuid.New(),
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		IsActive:   true,
		IsStaff:    false,
		DateJoined: time.Now(),
	}

	// Omitted password is a valid state (external-auth flows): the hash
	// stays nil and token-auth will refuse the account.
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashStr := string(hash)
		identity.PasswordHash = &hashStr
	}

	profile := &model.Profile{
		ID:         uuid.New(),
		IdentityID: identity.ID,
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}

	if err := s.repo.CreateWithProfile(ctx, identity, profile); err != nil {
		if err == model.ErrUsernameTaken {
			return nil, model.NewUsernameTakenError(req.Username)
		}
		return nil, fmt.Errorf("create reviewer: %w", err)
	}

	resp := (&model.Reviewer{Identity: *identity, Profile: *profile}).ToResponse()
	return &resp, nil
}

func (s *reviewerService) Get(ctx context.Context, rctx requestctx.Context, id uuid.UUID) (*model.ReviewerResponse, error) {
	reviewer, err := s.fetchOwned(ctx, rctx, id)
	if err != nil {
		return nil, err
	}

	resp := reviewer.ToResponse()
	return &resp, nil
}

func (s *reviewerService) Update(
	ctx context.Context,
	rctx requestctx.Context,
	id uuid.UUID,
	req model.UpdateRequest,
) (*model.ReviewerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reviewer, err := s.fetchOwned(ctx, rctx, id)
	if err != nil {
		return nil, err
	}

	// Partial update: only fields present in the payload change. Absent
	// profile fields are left exactly as stored.
	if req.Username != nil {
		reviewer.Identity.Username = *req.Username
	}
	if req.FirstName != nil {
		reviewer.Identity.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		reviewer.Identity.LastName = *req.LastName
	}
	if req.Email != nil {
		reviewer.Identity.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashStr := string(hash)
		reviewer.Identity.PasswordHash = &hashStr
	}
	if req.Bio != nil {
		reviewer.Profile.Bio = *req.Bio
	}
	if req.Website != nil {
		reviewer.Profile.Website = *req.Website
	}

	if err := s.repo.UpdateWithProfile(ctx, &reviewer.Identity, &reviewer.Profile); err != nil {
		if err == model.ErrUsernameTaken {
			return nil, model.NewUsernameTakenError(reviewer.Identity.Username)
		}
		if err == model.ErrReviewerNotFound {
			return nil, model.NewReviewerNotFoundError()
		}
		return nil, fmt.Errorf("update reviewer: %w", err)
	}

	resp := reviewer.ToResponse()
	return &resp, nil
}

func (s *reviewerService) Authenticate(ctx context.Context, username, password string) (*model.Identity, error) {
	identity, err := s.repo.GetIdentityByUsername(ctx, username)
	if err != nil {
		// Same response for unknown username and wrong password
		if err == model.ErrReviewerNotFound {
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("get identity: %w", err)
	}

	if !identity.IsActive || !identity.HasUsablePassword() {
		return nil, model.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*identity.PasswordHash), []byte(password)); err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	return identity, nil
}

// fetchOwned loads the target pair and applies the self-scope filter.
// A caller asking for someone else's record gets not-found, never
// forbidden, so record existence is not revealed.
func (s *reviewerService) fetchOwned(ctx context.Context, rctx requestctx.Context, id uuid.UUID) (*model.Reviewer, error) {
	reviewer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrReviewerNotFound {
			return nil, model.NewReviewerNotFoundError()
		}
		return nil, fmt.Errorf("get reviewer: %w", err)
	}

	if own := model.ScopeToSelf(rctx.Caller, []*model.Identity{&reviewer.Identity}); len(own) == 0 {
		return nil, model.NewReviewerNotFoundError()
	}

	return reviewer, nil
}
