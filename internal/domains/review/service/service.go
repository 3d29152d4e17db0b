package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"reviews-backend/internal/domains/review/model"
	"reviews-backend/internal/domains/review/repository"
	reviewer "reviews-backend/internal/domains/reviewer/model"
	"reviews-backend/internal/shared/requestctx"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	profiles   ProfileResolver
}

func NewReviewService(reviewRepo repository.ReviewRepository, profiles ProfileResolver) Service {
	return &reviewService{
		reviewRepo: reviewRepo,
		profiles:   profiles,
	}
}

func (s *reviewService) List(ctx context.Context, rctx requestctx.Context) ([]model.ReviewResponse, error) {
	profile, err := s.resolveProfile(ctx, rctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// Anonymous caller or identity without a profile: empty, not an
		// error.
		return []model.ReviewResponse{}, nil
	}

	reviews, err := s.reviewRepo.ListByReviewer(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	responses := make([]model.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, r.ToResponse())
	}
	return responses, nil
}

func (s *reviewService) Create(
	ctx context.Context,
	rctx requestctx.Context,
	req model.CreateReviewRequest,
) (*model.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Reviewer derivation must succeed before any record is constructed.
	profile, err := s.requireProfile(ctx, rctx)
	if err != nil {
		return nil, err
	}

	review := &model.Review{
		ID:             uuid.New(),
		Rating:         req.Rating,
		Title:          req.Title,
		Summary:        req.Summary,
		IPAddress:      rctx.ClientIP(),
		SubmissionDate: time.Now(),
		CompanyID:      req.CompanyID,
		ReviewerID:     profile.ID,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if err == model.ErrCompanyUnknown {
			return nil, model.NewCompanyUnknownError()
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	resp := review.ToResponse()
	return &resp, nil
}

func (s *reviewService) Get(ctx context.Context, rctx requestctx.Context, id uuid.UUID) (*model.ReviewResponse, error) {
	review, err := s.fetchOwned(ctx, rctx, id)
	if err != nil {
		return nil, err
	}

	resp := review.ToResponse()
	return &resp, nil
}

func (s *reviewService) Update(
	ctx context.Context,
	rctx requestctx.Context,
	id uuid.UUID,
	req model.UpdateReviewRequest,
) (*model.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review, err := s.fetchOwned(ctx, rctx, id)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Summary != nil {
		review.Summary = *req.Summary
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		if err == model.ErrReviewNotFound {
			return nil, model.NewReviewNotFoundError()
		}
		return nil, fmt.Errorf("update review: %w", err)
	}

	resp := review.ToResponse()
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, rctx requestctx.Context, id uuid.UUID) error {
	review, err := s.fetchOwned(ctx, rctx, id)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
		if err == model.ErrReviewNotFound {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("delete review: %w", err)
	}

	return nil
}

// resolveProfile maps the caller to its profile. Anonymous callers and
// identities without a profile both come back as (nil, nil).
func (s *reviewService) resolveProfile(ctx context.Context, rctx requestctx.Context) (*reviewer.Profile, error) {
	identityID, ok := rctx.Caller.IdentityID()
	if !ok {
		return nil, nil
	}

	profile, err := s.profiles.GetProfileByIdentity(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("resolve profile: %w", err)
	}
	return profile, nil
}

// requireProfile is resolveProfile for write paths, where absence is a
// rejection: the two derivation failures are distinguished so the caller
// can tell a missing login from a missing profile record.
func (s *reviewService) requireProfile(ctx context.Context, rctx requestctx.Context) (*reviewer.Profile, error) {
	if rctx.Caller.IsAnonymous() {
		return nil, model.NewAnonymousCallerError()
	}

	profile, err := s.resolveProfile(ctx, rctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, model.NewNoReviewerProfileError()
	}
	return profile, nil
}

// fetchOwned loads the target review and applies the reviewer scope.
// Non-owned targets are indistinguishable from missing ones.
func (s *reviewService) fetchOwned(ctx context.Context, rctx requestctx.Context, id uuid.UUID) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrReviewNotFound {
			return nil, model.NewReviewNotFoundError()
		}
		return nil, fmt.Errorf("get review: %w", err)
	}

	profile, err := s.resolveProfile(ctx, rctx)
	if err != nil {
		return nil, err
	}

	if own := model.ScopeToReviewer(profile, []*model.Review{review}); len(own) == 0 {
		return nil, model.NewReviewNotFoundError()
	}

	return review, nil
}
