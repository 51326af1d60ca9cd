package notification

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Message is the payload carried by an outbox job and pushed to the recipient.
type Message struct {
	UserID uuid.UUID      `json:"user_id"`
	Type   Type           `json:"type"`
	Title  string         `json:"title"`
	Body   string         `json:"message"`
	Data   map[string]any `json:"data,omitempty"`
}

func NewMessage(userID uuid.UUID, t Type, title, body string, data map[string]any) (Message, error) {
	if userID == uuid.Nil {
		return Message{}, ErrMissingUser
	}
	if !t.IsValid() {
		return Message{}, ErrInvalidType
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Message{}, ErrEmptyTitle
	}
	return Message{UserID: userID, Type: t, Title: title, Body: strings.TrimSpace(body), Data: data}, nil
}

func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

func DecodeMessage(payload []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(payload, &m); err != nil {
		return Message{}, ErrInvalidPayload
	}
	if m.UserID == uuid.Nil || !m.Type.IsValid() {
		return Message{}, ErrInvalidPayload
	}
	return m, nil
}
