package converter

import (
	"marketplace-api/internal/domain/conversation"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"
)

func ConversationToRow(c *conversation.Conversation) sqlstore.Conversations {
	return sqlstore.Conversations{
		ID:            c.ID(),
		OrderID:       c.OrderID(),
		ShopperID:     c.ShopperID(),
		TravelerID:    c.TravelerID(),
		IsUnlocked:    c.IsUnlocked(),
		UnlockedAt:    pgconv.TimePtrToPgtype(c.UnlockedAt()),
		IsActive:      c.IsActive(),
		ClosedAt:      pgconv.TimePtrToPgtype(c.ClosedAt()),
		LastMessageAt: pgconv.TimePtrToPgtype(c.LastMessageAt()),
		CreatedAt:     pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func ConversationToUpdateParams(c *conversation.Conversation) sqlstore.UpdateConversationParams {
	row := ConversationToRow(c)
	return sqlstore.UpdateConversationParams{
		ID:            row.ID,
		IsUnlocked:    row.IsUnlocked,
		UnlockedAt:    row.UnlockedAt,
		IsActive:      row.IsActive,
		ClosedAt:      row.ClosedAt,
		LastMessageAt: row.LastMessageAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func ConversationFromRow(row sqlstore.Conversations) *conversation.Conversation {
	return conversation.ReconstructConversation(row.ID, row.OrderID, row.ShopperID, row.TravelerID,
		row.IsUnlocked, pgconv.TimePtrFromPgtype(row.UnlockedAt),
		row.IsActive, pgconv.TimePtrFromPgtype(row.ClosedAt), pgconv.TimePtrFromPgtype(row.LastMessageAt),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func MessageToRow(m *conversation.Message) sqlstore.Messages {
	return sqlstore.Messages{
		ID:             m.ID(),
		ConversationID: m.ConversationID(),
		SenderID:       m.SenderID(),
		MessageType:    m.Type().String(),
		Content:        m.Content(),
		AttachmentURL:  pgconv.StringPtrToPgtype(m.AttachmentURL()),
		ReadAt:         pgconv.TimePtrToPgtype(m.ReadAt()),
		EditedAt:       pgconv.TimePtrToPgtype(m.EditedAt()),
		CreatedAt:      pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

func MessageFromRow(row sqlstore.Messages) (*conversation.Message, error) {
	t := conversation.MessageType(row.MessageType)
	if t != conversation.MessageSystem {
		var err error
		if t, err = conversation.ParseMessageType(row.MessageType); err != nil {
			return nil, err
		}
	}
	return conversation.ReconstructMessage(row.ID, row.ConversationID, row.SenderID, t, row.Content,
		pgconv.StringPtrFromPgtype(row.AttachmentURL),
		pgconv.TimePtrFromPgtype(row.ReadAt), pgconv.TimePtrFromPgtype(row.EditedAt),
		pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
