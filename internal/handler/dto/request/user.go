package request

import (
	"marketplace-api/internal/domain/user"
)

// UpdateProfileRequest is a partial update; an empty string clears an optional field.
type UpdateProfileRequest struct {
	FirstName      *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName       *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	DisplayName    *string `json:"display_name" binding:"omitempty,max=100"`
	Bio            *string `json:"bio" binding:"omitempty,max=1000"`
	Phone          *string `json:"phone" binding:"omitempty,max=20"`
	PrimaryCountry *string `json:"primary_country" binding:"omitempty,len=2"`
	PrimaryCity    *string `json:"primary_city" binding:"omitempty,max=100"`
	AvatarURL      *string `json:"avatar_url" binding:"omitempty,url"`
}

func (r *UpdateProfileRequest) ToUpdate() user.ProfileUpdate {
	return user.ProfileUpdate{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		DisplayName:    r.DisplayName,
		Bio:            r.Bio,
		Phone:          r.Phone,
		PrimaryCountry: r.PrimaryCountry,
		PrimaryCity:    r.PrimaryCity,
		AvatarURL:      r.AvatarURL,
	}
}
