package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	IsRead    bool           `json:"is_read"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type NotificationPageResponse struct {
	Page[NotificationResponse]
	UnreadCount int64 `json:"unread_count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	return mapOne[NotificationResponse](v)
}

func FromNotificationPage(p *queries.NotificationPage) *NotificationPageResponse {
	return &NotificationPageResponse{
		Page: Page[NotificationResponse]{
			Items:      mapList[NotificationResponse](p.Items),
			NextCursor: cursorString(p.Next),
		},
		UnreadCount: p.UnreadCount,
	}
}
