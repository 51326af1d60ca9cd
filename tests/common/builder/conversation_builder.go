//go:build unit || e2e

package builder

import (
	"marketplace-api/internal/domain/conversation"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConversationBuilder struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	ShopperID  uuid.UUID
	TravelerID uuid.UUID
	Unlocked   bool
	Active     bool
}

// NewConversationBuilder describes an unlocked, open conversation.
func NewConversationBuilder() *ConversationBuilder {
	return &ConversationBuilder{
		ID:         uuid.New(),
		OrderID:    uuid.New(),
		ShopperID:  uuid.New(),
		TravelerID: uuid.New(),
		Unlocked:   true,
		Active:     true,
	}
}

func (b *ConversationBuilder) With(mutate func(*ConversationBuilder)) *ConversationBuilder {
	mutate(b)
	return b
}

func (b *ConversationBuilder) Locked() *ConversationBuilder {
	b.Unlocked = false
	return b
}

func (b *ConversationBuilder) Closed() *ConversationBuilder {
	b.Active = false
	return b
}

func (b *ConversationBuilder) BuildDomain() *conversation.Conversation {
	return conversation.ReconstructConversation(b.ID, b.OrderID, b.ShopperID, b.TravelerID,
		b.Unlocked, FixedNowPtr(b.Unlocked), b.Active, FixedNowPtr(!b.Active), nil, FixedNow, FixedNow)
}

func (b *ConversationBuilder) BuildView() *queries.ConversationView {
	return &queries.ConversationView{
		ID:         b.ID,
		OrderID:    b.OrderID,
		ShopperID:  b.ShopperID,
		TravelerID: b.TravelerID,
		IsUnlocked: b.Unlocked,
		UnlockedAt: FixedNowPtr(b.Unlocked),
		IsActive:   b.Active,
		ClosedAt:   FixedNowPtr(!b.Active),
		CreatedAt:  FixedNow,
	}
}
