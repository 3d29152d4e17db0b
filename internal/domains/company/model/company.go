package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Company is a reviewable organization. Ordinary reviewers only read
// companies; creation and edits go through the staff endpoints. A company
// cannot be deleted while any review references it.
type Company struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Website *string   `json:"website"`
}

const MaxNameLength = 64

// CreateCompanyRequest is the staff payload for adding a company.
type CreateCompanyRequest struct {
	Name    string  `json:"name"`
	Website *string `json:"website"`
}

func (r CreateCompanyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != nil && *r.Website != "",
				validation.By(func(interface{}) error {
					return is.URL.Validate(*r.Website)
				}),
			),
		),
	)
}

// UpdateCompanyRequest is a partial staff update.
type UpdateCompanyRequest struct {
	Name    *string `json:"name"`
	Website *string `json:"website"`
}

func (r UpdateCompanyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.By(func(interface{}) error {
					if *r.Name == "" {
						return fmt.Errorf("name cannot be blank")
					}
					if len(*r.Name) > MaxNameLength {
						return fmt.Errorf("name must be at most %d characters", MaxNameLength)
					}
					return nil
				}),
			),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != nil && *r.Website != "",
				validation.By(func(interface{}) error {
					return is.URL.Validate(*r.Website)
				}),
			),
		),
	)
}

// CompanyResponse is the wire representation.
type CompanyResponse struct {
	ID      uuid.UUID `json:"id"`
	URL     string    `json:"url"`
	Name    string    `json:"name"`
	Website *string   `json:"website"`
}

func (c *Company) ToResponse() CompanyResponse {
	return CompanyResponse{
		ID:      c.ID,
		URL:     fmt.Sprintf("/companies/%s/", c.ID),
		Name:    c.Name,
		Website: c.Website,
	}
}
