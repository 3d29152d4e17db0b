package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateReviewRequest carries only the client-settable fields. ip_address
// and reviewer are server-derived; any client-supplied value for them is
// ignored by construction since they simply do not bind here.
type CreateReviewRequest struct {
	CompanyID uuid.UUID `json:"company_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CompanyID,
			validation.Required.Error("company_id is required"),
			validation.By(func(interface{}) error {
				if r.CompanyID == uuid.Nil {
					return fmt.Errorf("company_id is required")
				}
				return nil
			}),
		),
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(MinRating).Error("rating must be at least 1"),
			validation.Max(MaxRating).Error("rating must be at most 5"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Summary,
			validation.Required.Error("summary is required"),
			validation.Length(1, MaxSummaryLength),
		),
	)
}

// UpdateReviewRequest is a partial update of the mutable fields. Company
// and reviewer references cannot be reassigned; submission_date and
// ip_address are immutable.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating,
			validation.When(r.Rating != nil,
				validation.By(func(interface{}) error {
					if *r.Rating < MinRating || *r.Rating > MaxRating {
						return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
					}
					return nil
				}),
			),
		),
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.By(func(interface{}) error {
					if *r.Title == "" {
						return fmt.Errorf("title cannot be blank")
					}
					if len(*r.Title) > MaxTitleLength {
						return fmt.Errorf("title must be at most %d characters", MaxTitleLength)
					}
					return nil
				}),
			),
		),
		validation.Field(&r.Summary,
			validation.When(r.Summary != nil,
				validation.By(func(interface{}) error {
					if *r.Summary == "" {
						return fmt.Errorf("summary cannot be blank")
					}
					if len(*r.Summary) > MaxSummaryLength {
						return fmt.Errorf("summary must be at most %d characters", MaxSummaryLength)
					}
					return nil
				}),
			),
		),
	)
}

// ReviewResponse mirrors the stored record, including the derived fields.
type ReviewResponse struct {
	ID             uuid.UUID `json:"id"`
	URL            string    `json:"url"`
	Rating         int       `json:"rating"`
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	IPAddress      string    `json:"ip_address"`
	SubmissionDate time.Time `json:"submission_date"`
	CompanyID      uuid.UUID `json:"company_id"`
	ReviewerID     uuid.UUID `json:"reviewer_id"`
}

func (r *Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:             r.ID,
		URL:            fmt.Sprintf("/reviews/%s/", r.ID),
		Rating:         r.Rating,
		Title:          r.Title,
		Summary:        r.Summary,
		IPAddress:      r.IPAddress,
		SubmissionDate: r.SubmissionDate,
		CompanyID:      r.CompanyID,
		ReviewerID:     r.ReviewerID,
	}
}
