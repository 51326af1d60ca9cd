//go:build unit

package conversation_test

import (
	"strings"
	"testing"
	"time"

	"marketplace-api/internal/domain/conversation"
	"marketplace-api/internal/pkg/ptr"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockAndClose(t *testing.T) {
	shopper, traveler := uuid.New(), uuid.New()
	c := conversation.NewConversation(uuid.New(), shopper, traveler, builder.FixedNow)
	require.False(t, c.IsUnlocked())
	assert.ErrorIs(t, c.CheckCanSend(shopper), conversation.ErrConversationLocked)

	later := builder.FixedNow.Add(time.Hour)
	c.Unlock(later)
	require.True(t, c.IsUnlocked())
	assert.Equal(t, later, *c.UnlockedAt())
	c.Unlock(later.Add(time.Hour))
	assert.Equal(t, later, *c.UnlockedAt(), "二回目の unlock は時刻を変えない")
	assert.True(t, c.CanSendMessage(traveler))

	require.True(t, c.Close(later))
	assert.False(t, c.Close(later), "already closed")
	assert.ErrorIs(t, c.CheckCanSend(traveler), conversation.ErrConversationClosed)
}

func TestCheckCanSend(t *testing.T) {
	b := builder.NewConversationBuilder()
	c := b.BuildDomain()

	assert.NoError(t, c.CheckCanSend(b.ShopperID))
	assert.NoError(t, c.CheckCanSend(b.TravelerID))
	assert.ErrorIs(t, c.CheckCanSend(uuid.New()), conversation.ErrNotParticipant)
	assert.Equal(t, b.TravelerID, c.Counterpart(b.ShopperID))
	assert.Equal(t, b.ShopperID, c.Counterpart(b.TravelerID))

	stranger := uuid.New()
	closed := builder.NewConversationBuilder().Closed().BuildDomain()
	assert.ErrorIs(t, closed.CheckCanSend(stranger), conversation.ErrNotParticipant, "participation is checked first")
}

func TestSend(t *testing.T) {
	now := builder.FixedNow.Add(time.Minute)

	tests := []struct {
		name  string
		in    conversation.MessageInput
		errIs error
	}{
		{name: "テキストOK", in: conversation.MessageInput{Type: conversation.MessageText, Content: "Picked it up today"}},
		{name: "画像は添付必須", in: conversation.MessageInput{Type: conversation.MessageImage, Content: "receipt"}, errIs: conversation.ErrAttachmentRequired},
		{name: "画像 + https OK", in: conversation.MessageInput{Type: conversation.MessageImage, Content: "receipt", AttachmentURL: ptr.Of("https://cdn.example.com/r.jpg")}},
		{name: "添付は http(s) のみ", in: conversation.MessageInput{Type: conversation.MessageDocument, Content: "invoice", AttachmentURL: ptr.Of("file:///etc/passwd")}, errIs: conversation.ErrInvalidAttachment},
		{name: "空白のみNG", in: conversation.MessageInput{Type: conversation.MessageText, Content: "   "}, errIs: conversation.ErrEmptyContent},
		{name: "長すぎNG", in: conversation.MessageInput{Type: conversation.MessageText, Content: strings.Repeat("x", conversation.MaxContentLength+1)}, errIs: conversation.ErrContentTooLong},
		{name: "system は送れない", in: conversation.MessageInput{Type: conversation.MessageSystem, Content: "hi"}, errIs: conversation.ErrInvalidMessageType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewConversationBuilder()
			c := b.BuildDomain()

			m, err := c.Send(b.TravelerID, tt.in, now)

			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, c.LastMessageAt())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.ID(), m.ConversationID())
			assert.Equal(t, b.TravelerID, m.SenderID())
			assert.False(t, m.IsRead())
			assert.Equal(t, now, *c.LastMessageAt())
		})
	}

	t.Run("locked conversation refuses", func(t *testing.T) {
		b := builder.NewConversationBuilder().Locked()
		_, err := b.BuildDomain().Send(b.ShopperID, conversation.MessageInput{Type: conversation.MessageText, Content: "hi"}, now)
		assert.ErrorIs(t, err, conversation.ErrConversationLocked)
	})
}

func TestParseMessageType(t *testing.T) {
	for _, s := range []string{"text", "image", "document", "location"} {
		got, err := conversation.ParseMessageType(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}
	for _, s := range []string{"system", "video", ""} {
		_, err := conversation.ParseMessageType(s)
		assert.ErrorIs(t, err, conversation.ErrInvalidMessageType, s)
	}
}

func TestEdit(t *testing.T) {
	b := builder.NewConversationBuilder()
	c := b.BuildDomain()
	m, err := c.Send(b.ShopperID, conversation.MessageInput{Type: conversation.MessageText, Content: "Size M please"}, builder.FixedNow)
	require.NoError(t, err)
	later := builder.FixedNow.Add(time.Minute)

	assert.ErrorIs(t, m.Edit(c, b.TravelerID, "Size L", later), conversation.ErrNotSender)
	require.NoError(t, m.Edit(c, b.ShopperID, " Size L please ", later))
	assert.Equal(t, "Size L please", m.Content())
	assert.Equal(t, later, *m.EditedAt())

	c.Close(later)
	assert.ErrorIs(t, m.Edit(c, b.ShopperID, "Size S", later), conversation.ErrConversationClosed)

	sys := c.SystemNotice(b.ShopperID, "Conversation closed", later)
	assert.Equal(t, conversation.MessageSystem, sys.Type())
	assert.ErrorIs(t, sys.Edit(c, b.ShopperID, "x", later), conversation.ErrSystemMessageLocked)
}
