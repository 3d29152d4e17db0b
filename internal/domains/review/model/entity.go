package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a reviewer's statement about a company.
//
// IPAddress and ReviewerID are derived server-side on create and never
// accepted from the client. SubmissionDate is set once at creation.
// CompanyID and ReviewerID are immutable after creation; there is no
// reassignment operation.
type Review struct {
	ID             uuid.UUID `json:"id"`
	Rating         int       `json:"rating"` // 1-5
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	IPAddress      string    `json:"ip_address"`
	SubmissionDate time.Time `json:"submission_date"`
	CompanyID      uuid.UUID `json:"company_id"`
	ReviewerID     uuid.UUID `json:"reviewer_id"` // profile id
}

const (
	MinRating = 1
	MaxRating = 5

	MaxTitleLength   = 64
	MaxSummaryLength = 10000
)
