package conversation

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Message struct {
	id             uuid.UUID
	conversationID uuid.UUID
	senderID       uuid.UUID
	messageType    MessageType
	content        string
	attachmentURL  *string
	readAt         *time.Time
	editedAt       *time.Time
	createdAt      time.Time
}

type MessageInput struct {
	Type          MessageType
	Content       string
	AttachmentURL *string
}

// Send validates a participant's message and moves the conversation's last activity.
func (c *Conversation) Send(senderID uuid.UUID, in MessageInput, now time.Time) (*Message, error) {
	if err := c.CheckCanSend(senderID); err != nil {
		return nil, err
	}
	if in.Type == MessageSystem {
		return nil, ErrInvalidMessageType
	}
	content, err := newContent(in.Content)
	if err != nil {
		return nil, err
	}
	attachment, err := newAttachment(in.Type, in.AttachmentURL)
	if err != nil {
		return nil, err
	}
	t := now
	c.lastMessageAt = &t
	c.updatedAt = now
	return &Message{
		id:             uuid.New(),
		conversationID: c.id,
		senderID:       senderID,
		messageType:    in.Type,
		content:        content,
		attachmentURL:  attachment,
		createdAt:      now,
	}, nil
}

// SystemNotice is a platform message attributed to actorID. It is allowed on a
// locked or closed conversation so it can announce those changes.
func (c *Conversation) SystemNotice(actorID uuid.UUID, text string, now time.Time) *Message {
	t := now
	c.lastMessageAt = &t
	c.updatedAt = now
	return &Message{
		id:             uuid.New(),
		conversationID: c.id,
		senderID:       actorID,
		messageType:    MessageSystem,
		content:        text,
		createdAt:      now,
	}
}

func ReconstructMessage(
	id, conversationID, senderID uuid.UUID,
	messageType MessageType,
	content string,
	attachmentURL *string,
	readAt, editedAt *time.Time,
	createdAt time.Time,
) *Message {
	return &Message{
		id:             id,
		conversationID: conversationID,
		senderID:       senderID,
		messageType:    messageType,
		content:        content,
		attachmentURL:  attachmentURL,
		readAt:         readAt,
		editedAt:       editedAt,
		createdAt:      createdAt,
	}
}

// Edit replaces the text of the sender's own message while the conversation is open.
func (m *Message) Edit(c *Conversation, editorID uuid.UUID, text string, now time.Time) error {
	if m.messageType == MessageSystem {
		return ErrSystemMessageLocked
	}
	if editorID != m.senderID {
		return ErrNotSender
	}
	if err := c.CheckCanSend(editorID); err != nil {
		return err
	}
	content, err := newContent(text)
	if err != nil {
		return err
	}
	t := now
	m.content = content
	m.editedAt = &t
	return nil
}

func (m *Message) ID() uuid.UUID             { return m.id }
func (m *Message) ConversationID() uuid.UUID { return m.conversationID }
func (m *Message) SenderID() uuid.UUID       { return m.senderID }
func (m *Message) Type() MessageType         { return m.messageType }
func (m *Message) Content() string           { return m.content }
func (m *Message) AttachmentURL() *string    { return m.attachmentURL }
func (m *Message) ReadAt() *time.Time        { return m.readAt }
func (m *Message) EditedAt() *time.Time      { return m.editedAt }
func (m *Message) CreatedAt() time.Time      { return m.createdAt }
func (m *Message) IsRead() bool              { return m.readAt != nil }

func newContent(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(t) > MaxContentLength {
		return "", ErrContentTooLong
	}
	return t, nil
}

func newAttachment(t MessageType, raw *string) (*string, error) {
	var s string
	if raw != nil {
		s = strings.TrimSpace(*raw)
	}
	if s == "" {
		if t.needsAttachment() {
			return nil, ErrAttachmentRequired
		}
		return nil, nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidAttachment
	}
	return &s, nil
}
