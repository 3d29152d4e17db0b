package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeReviewNotFound    = "RVW001"
	ErrCodeAnonymousCaller   = "RVW002"
	ErrCodeNoReviewerProfile = "RVW003"
	ErrCodeCompanyUnknown    = "RVW004"
)

var (
	ErrReviewNotFound = errors.New("review not found")

	// ErrAnonymousCaller: the requester has no established identity at
	// all. Only reachable when the auth layer's guarantees are bypassed.
	ErrAnonymousCaller = errors.New("anonymous caller cannot author a review")

	// ErrNoReviewerProfile: the requester is authenticated but no profile
	// record is linked to the identity.
	ErrNoReviewerProfile = errors.New("caller has no reviewer profile")

	ErrCompanyUnknown = errors.New("referenced company does not exist")
)

// ReviewError carries an error code for response mapping.
type ReviewError struct {
	Code    string
	Message string
	// Field names the wire field the failure belongs to, for validation
	// style errors. Empty for plain errors.
	Field string
	Err   error
}

func (e *ReviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

func NewReviewNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeReviewNotFound,
		Message: "Review not found",
		Err:     ErrReviewNotFound,
	}
}

// The two derivation failures surface as validation errors naming the
// reviewer field: the record is rejected before anything is written.

func NewAnonymousCallerError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeAnonymousCaller,
		Message: "No authenticated identity to derive the reviewer from",
		Field:   "reviewer",
		Err:     ErrAnonymousCaller,
	}
}

func NewNoReviewerProfileError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeNoReviewerProfile,
		Message: "Authenticated identity has no reviewer profile",
		Field:   "reviewer",
		Err:     ErrNoReviewerProfile,
	}
}

func NewCompanyUnknownError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeCompanyUnknown,
		Message: "Referenced company does not exist",
		Field:   "company_id",
		Err:     ErrCompanyUnknown,
	}
}
