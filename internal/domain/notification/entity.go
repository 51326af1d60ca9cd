package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the in-app copy of a delivered message.
type Notification struct {
	id        uuid.UUID
	userID    uuid.UUID
	kind      Type
	title     string
	message   string
	data      map[string]any
	isRead    bool
	readAt    *time.Time
	createdAt time.Time
}

func NewNotification(m Message, now time.Time) *Notification {
	return &Notification{
		id:        uuid.New(),
		userID:    m.UserID,
		kind:      m.Type,
		title:     m.Title,
		message:   m.Body,
		data:      m.Data,
		createdAt: now,
	}
}

func ReconstructNotification(id, userID uuid.UUID, kind Type, title, message string, data map[string]any, isRead bool, readAt *time.Time, createdAt time.Time) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		kind:      kind,
		title:     title,
		message:   message,
		data:      data,
		isRead:    isRead,
		readAt:    readAt,
		createdAt: createdAt,
	}
}

// MarkRead is a no-op on an already read notification.
func (n *Notification) MarkRead(userID uuid.UUID, now time.Time) error {
	if err := n.CheckRecipient(userID); err != nil {
		return err
	}
	if n.isRead {
		return nil
	}
	t := now
	n.isRead = true
	n.readAt = &t
	return nil
}

func (n *Notification) CheckRecipient(userID uuid.UUID) error {
	if n.userID != userID {
		return ErrNotRecipient
	}
	return nil
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) UserID() uuid.UUID    { return n.userID }
func (n *Notification) Type() Type           { return n.kind }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Data() map[string]any { return n.data }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
