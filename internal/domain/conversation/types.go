package conversation

import "errors"

var (
	ErrNotParticipant      = errors.New("only the order's shopper and matched traveler can use its conversation")
	ErrConversationLocked  = errors.New("conversation opens once the order is matched")
	ErrConversationClosed  = errors.New("conversation is closed")
	ErrInvalidMessageType  = errors.New("invalid message type")
	ErrEmptyContent        = errors.New("message content cannot be empty")
	ErrContentTooLong      = errors.New("message content exceeds maximum length")
	ErrAttachmentRequired  = errors.New("image and document messages need an attachment url")
	ErrInvalidAttachment   = errors.New("attachment url must be an http(s) url")
	ErrNotSender           = errors.New("only the sender can edit a message")
	ErrSystemMessageLocked = errors.New("system messages cannot be edited")
)

const MaxContentLength = 4000

type MessageType string

const (
	MessageText     MessageType = "text"
	MessageImage    MessageType = "image"
	MessageDocument MessageType = "document"
	MessageLocation MessageType = "location"
	// MessageSystem is written by the platform, never by a participant.
	MessageSystem MessageType = "system"
)

func (t MessageType) String() string { return string(t) }

func (t MessageType) needsAttachment() bool {
	return t == MessageImage || t == MessageDocument
}

// ParseMessageType accepts the types a participant may send.
func ParseMessageType(s string) (MessageType, error) {
	switch t := MessageType(s); t {
	case MessageText, MessageImage, MessageDocument, MessageLocation:
		return t, nil
	}
	return "", ErrInvalidMessageType
}
