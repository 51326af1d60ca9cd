package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConversationResponse struct {
	ID            uuid.UUID  `json:"id"`
	OrderID       uuid.UUID  `json:"order_id"`
	ShopperID     uuid.UUID  `json:"shopper_id"`
	TravelerID    uuid.UUID  `json:"traveler_id"`
	IsUnlocked    bool       `json:"is_unlocked"`
	UnlockedAt    *time.Time `json:"unlocked_at,omitempty"`
	IsActive      bool       `json:"is_active"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	UnreadCount   int64      `json:"unread_count"`
	CanSend       bool       `json:"can_send_message"`
	CreatedAt     time.Time  `json:"created_at"`
}

type MessageResponse struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	SenderID       uuid.UUID  `json:"sender_id"`
	Type           string     `json:"message_type"`
	Content        string     `json:"content"`
	AttachmentURL  *string    `json:"attachment_url,omitempty"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	EditedAt       *time.Time `json:"edited_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type MessageSentResponse struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
}

func FromConversationView(v *queries.ConversationView) *ConversationResponse {
	return mapOne[ConversationResponse](v)
}

func FromConversationPage(p *queries.ConversationPage) *Page[ConversationResponse] {
	return &Page[ConversationResponse]{
		Items:      mapList[ConversationResponse](p.Items),
		NextCursor: cursorString(p.Next),
	}
}

func FromMessagePage(p *queries.MessagePage) *Page[MessageResponse] {
	return &Page[MessageResponse]{
		Items:      mapList[MessageResponse](p.Items),
		NextCursor: cursorString(p.Next),
	}
}
