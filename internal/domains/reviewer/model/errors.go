package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeReviewerNotFound   = "USR001"
	ErrCodeUsernameTaken      = "USR002"
	ErrCodeInvalidCredentials = "USR003"
	ErrCodeIdentityInactive   = "USR004"
)

var (
	ErrReviewerNotFound   = errors.New("reviewer not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrIdentityInactive   = errors.New("identity is inactive")
)

// ReviewerError carries an error code alongside the message so the handler
// layer can map it to a response without string matching.
type ReviewerError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReviewerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewerError) Unwrap() error {
	return e.Err
}

func NewReviewerNotFoundError() *ReviewerError {
	return &ReviewerError{
		Code:    ErrCodeReviewerNotFound,
		Message: "Reviewer not found",
		Err:     ErrReviewerNotFound,
	}
}

func NewUsernameTakenError(username string) *ReviewerError {
	return &ReviewerError{
		Code:    ErrCodeUsernameTaken,
		Message: fmt.Sprintf("Username %q is already taken", username),
		Err:     ErrUsernameTaken,
	}
}

func NewInvalidCredentialsError() *ReviewerError {
	return &ReviewerError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid username or password",
		Err:     ErrInvalidCredentials,
	}
}
