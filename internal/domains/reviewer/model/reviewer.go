package model

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticable account record. The password hash is nil
// when the account was created without a password (external-auth flows);
// such an identity exists but cannot log in through token-auth.
type Identity struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash *string   `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"is_staff"`
	DateJoined   time.Time `json:"date_joined"`
}

// HasUsablePassword reports whether the identity can authenticate with a
// password.
func (i *Identity) HasUsablePassword() bool {
	return i.PasswordHash != nil && *i.PasswordHash != ""
}

// Profile is the reviewer-specific extension record, paired 1:1 with an
// Identity. Every identity registered through this system owns exactly one
// profile; a profile never outlives its identity (FK cascade).
type Profile struct {
	ID         uuid.UUID `json:"id"`
	IdentityID uuid.UUID `json:"identity_id"`
	Bio        string    `json:"bio"`
	Website    string    `json:"website"`
}

// Reviewer is the identity+profile pair, the acting party for reviews.
type Reviewer struct {
	Identity Identity
	Profile  Profile
}
