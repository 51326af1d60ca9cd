package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	DisplayName    *string    `json:"display_name,omitempty"`
	Bio            *string    `json:"bio,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	PrimaryCountry *string    `json:"primary_country,omitempty"`
	PrimaryCity    *string    `json:"primary_city,omitempty"`
	AvatarURL      *string    `json:"avatar_url,omitempty"`
	IsActive       bool       `json:"is_active"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type RegisterResponse struct {
	User *UserResponse `json:"user"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	return mapOne[UserResponse](v)
}
