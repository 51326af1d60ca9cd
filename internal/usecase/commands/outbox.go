package commands

import (
	"context"
	"time"

	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// notice is a notification to enqueue in the same transaction as the change it reports.
type notice struct {
	userID uuid.UUID
	kind   notification.Type
	title  string
	body   string
	data   map[string]any
}

func enqueue(ctx context.Context, tx shared.Tx, now time.Time, notices ...notice) error {
	for _, n := range notices {
		msg, err := notification.NewMessage(n.userID, n.kind, n.title, n.body, n.data)
		if err != nil {
			return err
		}
		job, err := notification.NewJob(msg, now)
		if err != nil {
			return err
		}
		if err := tx.Notifications().Enqueue(ctx, tx.DB(), job); err != nil {
			return err
		}
	}
	return nil
}

// counterpartNotice addresses n to every participant other than actorID.
func counterpartNotice(o *order.Order, actorID uuid.UUID, n notice) []notice {
	var out []notice
	candidates := []uuid.UUID{o.ShopperID()}
	if t := o.MatchedTravelerID(); t != nil {
		candidates = append(candidates, *t)
	}
	for _, id := range candidates {
		if id == actorID {
			continue
		}
		n.userID = id
		out = append(out, n)
	}
	return out
}
