package dto

import (
	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
)

// AuthenticateResponse is returned on a successful login.
type AuthenticateResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// RegisterResponse is returned when an administrator account is created or
// reactivated. The password bundle is never included.
type RegisterResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}

// MapIdentityToRegisterResponse converts the registered identity to an API response.
func MapIdentityToRegisterResponse(identity *authDomain.Identity) RegisterResponse {
	return RegisterResponse{
		ID:     identity.ID,
		UserID: identity.Key,
	}
}
