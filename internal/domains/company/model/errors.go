package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCompanyNotFound  = "CMP001"
	ErrCodeCompanyProtected = "CMP002"
)

var (
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCompanyProtected: the company is still referenced by at least
	// one review. The store refuses the delete (FK restrict); it is
	// surfaced as a conflict, never silently ignored.
	ErrCompanyProtected = errors.New("company is referenced by existing reviews")
)

type CompanyError struct {
	Code    string
	Message string
	Err     error
}

func (e *CompanyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CompanyError) Unwrap() error {
	return e.Err
}

func NewCompanyNotFoundError() *CompanyError {
	return &CompanyError{
		Code:    ErrCodeCompanyNotFound,
		Message: "Company not found",
		Err:     ErrCompanyNotFound,
	}
}

func NewCompanyProtectedError() *CompanyError {
	return &CompanyError{
		Code:    ErrCodeCompanyProtected,
		Message: "Company cannot be deleted while reviews reference it",
		Err:     ErrCompanyProtected,
	}
}
