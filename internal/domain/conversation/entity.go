package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the private channel of one order. It exists from the match onwards
// and is read-only after the order completes or is cancelled.
type Conversation struct {
	id            uuid.UUID
	orderID       uuid.UUID
	shopperID     uuid.UUID
	travelerID    uuid.UUID
	isUnlocked    bool
	unlockedAt    *time.Time
	isActive      bool
	closedAt      *time.Time
	lastMessageAt *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewConversation starts locked; Unlock opens it for messages.
func NewConversation(orderID, shopperID, travelerID uuid.UUID, now time.Time) *Conversation {
	return &Conversation{
		id:         uuid.New(),
		orderID:    orderID,
		shopperID:  shopperID,
		travelerID: travelerID,
		isActive:   true,
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructConversation(
	id, orderID, shopperID, travelerID uuid.UUID,
	isUnlocked bool,
	unlockedAt *time.Time,
	isActive bool,
	closedAt, lastMessageAt *time.Time,
	createdAt, updatedAt time.Time,
) *Conversation {
	return &Conversation{
		id:            id,
		orderID:       orderID,
		shopperID:     shopperID,
		travelerID:    travelerID,
		isUnlocked:    isUnlocked,
		unlockedAt:    unlockedAt,
		isActive:      isActive,
		closedAt:      closedAt,
		lastMessageAt: lastMessageAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Unlock is a no-op on an unlocked conversation.
func (c *Conversation) Unlock(now time.Time) {
	if c.isUnlocked {
		return
	}
	t := now
	c.isUnlocked = true
	c.unlockedAt = &t
	c.updatedAt = now
}

// Close reports whether the conversation was open.
func (c *Conversation) Close(now time.Time) bool {
	if !c.isActive {
		return false
	}
	t := now
	c.isActive = false
	c.closedAt = &t
	c.updatedAt = now
	return true
}

func (c *Conversation) IsParticipant(userID uuid.UUID) bool {
	return userID == c.shopperID || userID == c.travelerID
}

func (c *Conversation) CanSendMessage(userID uuid.UUID) bool {
	return c.CheckCanSend(userID) == nil
}

func (c *Conversation) CheckCanSend(userID uuid.UUID) error {
	switch {
	case !c.IsParticipant(userID):
		return ErrNotParticipant
	case !c.isUnlocked:
		return ErrConversationLocked
	case !c.isActive:
		return ErrConversationClosed
	}
	return nil
}

// Counterpart returns the other participant. The caller must be a participant.
func (c *Conversation) Counterpart(userID uuid.UUID) uuid.UUID {
	if userID == c.shopperID {
		return c.travelerID
	}
	return c.shopperID
}

func (c *Conversation) ID() uuid.UUID             { return c.id }
func (c *Conversation) OrderID() uuid.UUID        { return c.orderID }
func (c *Conversation) ShopperID() uuid.UUID      { return c.shopperID }
func (c *Conversation) TravelerID() uuid.UUID     { return c.travelerID }
func (c *Conversation) IsUnlocked() bool          { return c.isUnlocked }
func (c *Conversation) UnlockedAt() *time.Time    { return c.unlockedAt }
func (c *Conversation) IsActive() bool            { return c.isActive }
func (c *Conversation) ClosedAt() *time.Time      { return c.closedAt }
func (c *Conversation) LastMessageAt() *time.Time { return c.lastMessageAt }
func (c *Conversation) CreatedAt() time.Time      { return c.createdAt }
func (c *Conversation) UpdatedAt() time.Time      { return c.updatedAt }
