package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ========================================
// REQUEST DTOs
// ========================================

// RegisterRequest is the payload for creating a reviewer account. Password
// is optional: when omitted the identity is created without a usable
// password. date_joined and url are derived and never accepted here.
type RegisterRequest struct {
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  *string `json:"password"`
	Bio       *string `json:"bio"`
	Website   *string `json:"website"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 150),
		),
		validation.Field(&r.FirstName, validation.Length(0, 30)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error("invalid email format")),
			validation.Length(0, 254),
		),
		validation.Field(&r.Password,
			validation.When(r.Password != nil && *r.Password != "",
				validation.By(passwordLength(r.Password)),
			),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != nil && *r.Website != "",
				validation.By(urlValue(r.Website)),
			),
		),
	)
}

// UpdateRequest is a partial update: only fields present in the payload are
// touched. Pointer fields distinguish "absent" from "set to empty".
type UpdateRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Bio       *string `json:"bio"`
	Website   *string `json:"website"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.When(r.Username != nil,
				validation.By(func(interface{}) error {
					if *r.Username == "" {
						return fmt.Errorf("username cannot be blank")
					}
					if len(*r.Username) > 150 {
						return fmt.Errorf("the length must be no more than 150")
					}
					return nil
				}),
			),
		),
		validation.Field(&r.FirstName,
			validation.When(r.FirstName != nil, validation.By(maxLen(r.FirstName, 30))),
		),
		validation.Field(&r.LastName,
			validation.When(r.LastName != nil, validation.By(maxLen(r.LastName, 150))),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != nil && *r.Email != "",
				validation.By(func(interface{}) error {
					return is.Email.Validate(*r.Email)
				}),
			),
		),
		validation.Field(&r.Password,
			validation.When(r.Password != nil && *r.Password != "",
				validation.By(passwordLength(r.Password)),
			),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != nil && *r.Website != "",
				validation.By(urlValue(r.Website)),
			),
		),
	)
}

func passwordLength(p *string) validation.RuleFunc {
	return func(interface{}) error {
		if len(*p) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}
		if len(*p) > 128 {
			return fmt.Errorf("password must be at most 128 characters")
		}
		return nil
	}
}

func urlValue(u *string) validation.RuleFunc {
	return func(interface{}) error {
		return is.URL.Validate(*u)
	}
}

func maxLen(s *string, max int) validation.RuleFunc {
	return func(interface{}) error {
		if len(*s) > max {
			return fmt.Errorf("the length must be no more than %d", max)
		}
		return nil
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

// ReviewerResponse is the read representation of the identity+profile pair.
// The password never appears here; url and date_joined are derived.
type ReviewerResponse struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Bio        string    `json:"bio"`
	Website    string    `json:"website"`
	DateJoined time.Time `json:"date_joined"`
}

// ToResponse composes the identity and its profile into one wire record.
func (r *Reviewer) ToResponse() ReviewerResponse {
	return ReviewerResponse{
		ID:         r.Identity.ID,
		URL:        fmt.Sprintf("/reviewers/%s/", r.Identity.ID),
		Username:   r.Identity.Username,
		FirstName:  r.Identity.FirstName,
		LastName:   r.Identity.LastName,
		Email:      r.Identity.Email,
		Bio:        r.Profile.Bio,
		Website:    r.Profile.Website,
		DateJoined: r.Identity.DateJoined,
	}
}
