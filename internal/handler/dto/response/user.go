package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// PublicUserResponse leaves out contact details.
type PublicUserResponse struct {
	ID             uuid.UUID `json:"id"`
	Role           string    `json:"role"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DisplayName    *string   `json:"display_name,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	PrimaryCountry *string   `json:"primary_country,omitempty"`
	PrimaryCity    *string   `json:"primary_city,omitempty"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromPublicUserView(v *queries.PublicUserView) *PublicUserResponse {
	return mapOne[PublicUserResponse](v)
}

func FromPublicUserPage(items []*queries.PublicUserView, next *queries.Cursor) Page[PublicUserResponse] {
	return Page[PublicUserResponse]{Items: mapList[PublicUserResponse](items), NextCursor: cursorString(next)}
}
