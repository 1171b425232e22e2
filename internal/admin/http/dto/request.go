// Package dto provides data transfer objects for administrator HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/clinicops/admin-api/internal/validation"
)

// AuthenticateRequest carries administrator login credentials.
type AuthenticateRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// Validate checks that both credential fields are present.
func (r *AuthenticateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Password, validation.Required),
	)
}

// RegisterRequest carries the fields for creating an administrator account.
type RegisterRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// Validate checks the registration fields.
func (r *RegisterRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, 128),
		),
		validation.Field(&r.Password, validation.Required),
	)
}
