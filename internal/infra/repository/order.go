package repository

import (
	"context"

	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Orders) error
	UpdateOrder(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Orders) (int64, error)
	GetOrderByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Orders, error)
	GetOrderForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Orders, error)
	SoftDeleteOrder(ctx context.Context, db sqlstore.DBTX, arg sqlstore.SoftDeleteOrderParams) (int64, error)
	InsertOrderStatusHistory(ctx context.Context, db sqlstore.DBTX, arg sqlstore.OrderStatusHistory) error
	ListOrderStatusHistory(ctx context.Context, db sqlstore.DBTX, orderID uuid.UUID) ([]sqlstore.OrderStatusHistory, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlstore.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlstore.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the order together with its initial history record.
func (r *OrderRepository) Create(ctx context.Context, tx sqlstore.DBTX, o *order.Order, initial *order.StatusHistory) error {
	db := conn(tx, r.db)
	if err := r.queries.CreateOrder(ctx, db, converter.OrderToRow(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return r.AppendHistory(ctx, db, initial)
}

func (r *OrderRepository) Save(ctx context.Context, tx sqlstore.DBTX, o *order.Order) error {
	affected, err := r.queries.UpdateOrder(ctx, conn(tx, r.db), converter.OrderToRow(o))
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) AppendHistory(ctx context.Context, tx sqlstore.DBTX, h *order.StatusHistory) error {
	if err := r.queries.InsertOrderStatusHistory(ctx, conn(tx, r.db), converter.HistoryToRow(h)); err != nil {
		return infra.WrapRepoErr("failed to append order status history", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, conn(tx, r.db), id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	return r.toDomain(row)
}

// FindForUpdate locks the order row until the surrounding transaction ends.
func (r *OrderRepository) FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, conn(tx, r.db), id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return r.toDomain(row)
}

// Delete persists the deletion stamp set by MarkDeleted. The row is kept.
func (r *OrderRepository) Delete(ctx context.Context, tx sqlstore.DBTX, o *order.Order) error {
	if o.DeletedAt() == nil {
		return infra.WrapRepoErr("order is not marked deleted", nil, infra.KindConflict)
	}
	affected, err := r.queries.SoftDeleteOrder(ctx, conn(tx, r.db), sqlstore.SoftDeleteOrderParams{
		ID:        o.ID(),
		DeletedAt: pgconv.TimeToPgtype(*o.DeletedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) History(ctx context.Context, tx sqlstore.DBTX, orderID uuid.UUID) ([]*order.StatusHistory, error) {
	rows, err := r.queries.ListOrderStatusHistory(ctx, conn(tx, r.db), orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order status history", err)
	}
	history := make([]*order.StatusHistory, 0, len(rows))
	for _, row := range rows {
		h, err := converter.HistoryFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt order status history", err)
		}
		history = append(history, h)
	}
	return history, nil
}

func (r *OrderRepository) toDomain(row sqlstore.Orders) (*order.Order, error) {
	o, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order row", err)
	}
	return o, nil
}
