package request

import (
	"marketplace-api/internal/usecase/commands"
)

type SendMessageRequest struct {
	Type          string  `json:"message_type" binding:"omitempty,oneof=text image document location"`
	Content       string  `json:"content" binding:"required,max=4000"`
	AttachmentURL *string `json:"attachment_url" binding:"omitempty,url,max=500"`
}

// ToCommand defaults the type to text.
func (r *SendMessageRequest) ToCommand() commands.SendMessageRequest {
	t := r.Type
	if t == "" {
		t = "text"
	}
	return commands.SendMessageRequest{
		Type:          t,
		Content:       r.Content,
		AttachmentURL: r.AttachmentURL,
	}
}

type EditMessageRequest struct {
	Content string `json:"content" binding:"required,max=4000"`
}
