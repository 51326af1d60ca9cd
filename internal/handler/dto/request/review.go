package request

import (
	"marketplace-api/internal/usecase/commands"
)

type CreateReviewRequest struct {
	Rating   int     `json:"rating" binding:"required,min=1,max=5"`
	Comment  *string `json:"comment" binding:"omitempty,max=1000"`
	IsPublic *bool   `json:"is_public"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		Rating:   r.Rating,
		Comment:  r.Comment,
		IsPublic: r.IsPublic,
	}
}

type RespondReviewRequest struct {
	Response string `json:"response" binding:"required,max=1000"`
}
