package queries

import (
	"context"
	"time"

	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	Search(ctx context.Context, filter OrderSearchFilter, after *Keyset, limit int32) ([]*OrderView, error)
	ListByShopper(ctx context.Context, shopperID uuid.UUID, status *string, after *Keyset, limit int32) ([]*OrderView, error)
	History(ctx context.Context, orderID uuid.UUID) ([]*StatusHistoryView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error)
	Search(ctx context.Context, actor shared.Actor, filter OrderSearchFilter, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
	ListMine(ctx context.Context, actor shared.Actor, status *string, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
	History(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]*StatusHistoryView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

// GetByID shows an active order to anyone. Any other status is visible only to the
// shopper, the matched traveler and admins; everyone else gets not found.
func (q *orderQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error) {
	v, err := loadOrder(ctx, q.store, id)
	if err != nil {
		return nil, err
	}
	if v.Status != order.StatusActive.String() && !canSeeOrderInternals(v, actor) {
		return nil, ErrOrderNotFound
	}
	return v, nil
}

func (q *orderQueriesImpl) Search(ctx context.Context, actor shared.Actor, filter OrderSearchFilter, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	if filter.Status == "" {
		filter.Status = order.StatusActive.String()
	}
	if _, err := order.ParseStatus(filter.Status); err != nil {
		return nil, nil, ErrInvalidFilter
	}
	if filter.Status != order.StatusActive.String() && !actor.IsAdmin() {
		return nil, nil, ErrSearchStatusForbidden
	}
	if filter.MinReward != nil && filter.MaxReward != nil && filter.MinReward.GreaterThan(*filter.MaxReward) {
		return nil, nil, ErrInvalidFilter
	}
	if !actor.IsAdmin() {
		filter.ExcludeShopperID = &actor.ID
	}

	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.store.Search(ctx, filter, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, orderKey)
	return page, next, nil
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, actor shared.Actor, status *string, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	if status != nil {
		if _, err := order.ParseStatus(*status); err != nil {
			return nil, nil, ErrInvalidFilter
		}
	}
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.store.ListByShopper(ctx, actor.ID, status, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, orderKey)
	return page, next, nil
}

func (q *orderQueriesImpl) History(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]*StatusHistoryView, error) {
	v, err := loadOrder(ctx, q.store, id)
	if err != nil {
		return nil, err
	}
	if !canSeeOrderInternals(v, actor) {
		return nil, ErrOrderAccess
	}
	return q.store.History(ctx, id)
}

func loadOrder(ctx context.Context, store OrderReadStore, id uuid.UUID) (*OrderView, error) {
	v, err := store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return v, nil
}

// canSeeOrderInternals covers history and escrow: shopper, matched traveler or admin.
func canSeeOrderInternals(v *OrderView, actor shared.Actor) bool {
	if actor.IsAdmin() || v.ShopperID == actor.ID {
		return true
	}
	return v.MatchedTravelerID != nil && *v.MatchedTravelerID == actor.ID
}

func orderKey(v *OrderView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
