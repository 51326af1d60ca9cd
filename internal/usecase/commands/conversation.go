package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace-api/internal/domain/conversation"
	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const previewLength = 80

type SendMessageRequest struct {
	Type          string
	Content       string
	AttachmentURL *string
}

type ConversationCommands interface {
	SendMessage(ctx context.Context, actor shared.Actor, conversationID uuid.UUID, req SendMessageRequest) (uuid.UUID, error)
	EditMessage(ctx context.Context, actor shared.Actor, conversationID, messageID uuid.UUID, content string) error
	// MarkRead stamps the counterpart's unread messages and returns how many changed.
	MarkRead(ctx context.Context, actor shared.Actor, conversationID uuid.UUID) (int64, error)
}

type conversationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewConversationCommands(uow shared.UnitOfWork, clk clock.Clock) ConversationCommands {
	return &conversationCommandsImpl{uow: uow, clock: clk}
}

func (c *conversationCommandsImpl) SendMessage(ctx context.Context, actor shared.Actor, conversationID uuid.UUID, req SendMessageRequest) (uuid.UUID, error) {
	kind, err := conversation.ParseMessageType(req.Type)
	if err != nil {
		return uuid.Nil, classify(err)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conv, err := tx.Conversations().FindForUpdate(ctx, tx.DB(), conversationID)
		if err != nil {
			return notFoundAs(err, ErrConversationNotFound)
		}
		now := c.clock.Now()
		m, err := conv.Send(actor.ID, conversation.MessageInput{Type: kind, Content: req.Content, AttachmentURL: req.AttachmentURL}, now)
		if err != nil {
			return err
		}
		if err := tx.Conversations().CreateMessage(ctx, tx.DB(), m); err != nil {
			return err
		}
		if err := tx.Conversations().Save(ctx, tx.DB(), conv); err != nil {
			return err
		}
		id = m.ID()
		return enqueue(ctx, tx, now, notice{
			userID: conv.Counterpart(actor.ID),
			kind:   notification.TypeMessageReceived,
			title:  "New message",
			body:   preview(m),
			data: map[string]any{
				"conversation_id": conv.ID().String(),
				"order_id":        conv.OrderID().String(),
				"message_id":      m.ID().String(),
			},
		})
	})
	if err != nil {
		return uuid.Nil, classify(err)
	}
	return id, nil
}

func (c *conversationCommandsImpl) EditMessage(ctx context.Context, actor shared.Actor, conversationID, messageID uuid.UUID, content string) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conv, err := tx.Conversations().FindForUpdate(ctx, tx.DB(), conversationID)
		if err != nil {
			return notFoundAs(err, ErrConversationNotFound)
		}
		m, err := tx.Conversations().FindMessageForUpdate(ctx, tx.DB(), messageID)
		if err != nil {
			return notFoundAs(err, ErrMessageNotFound)
		}
		if m.ConversationID() != conv.ID() {
			return ErrMessageNotFound
		}
		if err := m.Edit(conv, actor.ID, content, c.clock.Now()); err != nil {
			return err
		}
		return tx.Conversations().SaveMessage(ctx, tx.DB(), m)
	})
	return classify(err)
}

// MarkRead is allowed on a closed conversation so history can still be cleared.
func (c *conversationCommandsImpl) MarkRead(ctx context.Context, actor shared.Actor, conversationID uuid.UUID) (int64, error) {
	var n int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conv, err := tx.Conversations().FindForUpdate(ctx, tx.DB(), conversationID)
		if err != nil {
			return notFoundAs(err, ErrConversationNotFound)
		}
		if !conv.IsParticipant(actor.ID) {
			return conversation.ErrNotParticipant
		}
		n, err = tx.Conversations().MarkRead(ctx, tx.DB(), conv.ID(), actor.ID, c.clock.Now())
		return err
	})
	if err != nil {
		return 0, classify(err)
	}
	return n, nil
}

// openConversation gives a freshly matched order its unlocked conversation.
func openConversation(ctx context.Context, tx shared.Tx, o *order.Order, actorID uuid.UUID, now time.Time) error {
	traveler := o.MatchedTravelerID()
	if traveler == nil {
		return nil
	}
	conv := conversation.NewConversation(o.ID(), o.ShopperID(), *traveler, now)
	conv.Unlock(now)
	intro := conv.SystemNotice(actorID, fmt.Sprintf("Offer accepted for %s. You can now message each other.", o.Product().Name()), now)
	if err := tx.Conversations().Create(ctx, tx.DB(), conv); err != nil {
		return err
	}
	return tx.Conversations().CreateMessage(ctx, tx.DB(), intro)
}

// closeConversation ends messaging for an order that reached a terminal status.
// Orders cancelled before a match have no conversation.
func closeConversation(ctx context.Context, tx shared.Tx, o *order.Order, actorID uuid.UUID, now time.Time) error {
	conv, err := tx.Conversations().FindByOrderForUpdate(ctx, tx.DB(), o.ID())
	if infra.IsKind(err, infra.KindNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !conv.Close(now) {
		return nil
	}
	outro := conv.SystemNotice(actorID, fmt.Sprintf("Order %s. This conversation is now closed.", o.Status()), now)
	if err := tx.Conversations().Save(ctx, tx.DB(), conv); err != nil {
		return err
	}
	return tx.Conversations().CreateMessage(ctx, tx.DB(), outro)
}

func preview(m *conversation.Message) string {
	switch m.Type() {
	case conversation.MessageImage:
		return "Sent an image"
	case conversation.MessageDocument:
		return "Sent a document"
	}
	r := []rune(m.Content())
	if len(r) > previewLength {
		return string(r[:previewLength]) + "…"
	}
	return string(r)
}
