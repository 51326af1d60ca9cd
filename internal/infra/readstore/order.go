package readstore

import (
	"context"

	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Orders, error)
	SearchOrders(ctx context.Context, db sqlstore.DBTX, arg sqlstore.SearchOrdersParams) ([]sqlstore.Orders, error)
	ListOrdersByShopper(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListOrdersByShopperParams) ([]sqlstore.Orders, error)
	ListOrderStatusHistory(ctx context.Context, db sqlstore.DBTX, orderID uuid.UUID) ([]sqlstore.OrderStatusHistory, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlstore.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlstore.DBTX) *OrderReadStore {
	return &OrderReadStore{queries: queries, db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order view", err)
	}
	return toOrderView(row)
}

func (r *OrderReadStore) Search(ctx context.Context, f queries.OrderSearchFilter, after *queries.Keyset, limit int32) ([]*queries.OrderView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.SearchOrders(ctx, r.db, sqlstore.SearchOrdersParams{
		Status:             f.Status,
		ExcludeShopperID:   pgconv.UUIDPtrToPgtype(f.ExcludeShopperID),
		DestinationCountry: pgconv.StringPtrToPgtype(f.DestinationCountry),
		DestinationCity:    pgconv.StringPtrToPgtype(f.DestinationCity),
		MinReward:          pgconv.DecimalPtrToNumeric(f.MinReward),
		MaxReward:          pgconv.DecimalPtrToNumeric(f.MaxReward),
		DeadlineBefore:     pgconv.TimePtrToPgtype(f.DeadlineBefore),
		DeadlineAfter:      pgconv.TimePtrToPgtype(f.DeadlineAfter),
		Currency:           pgconv.StringPtrToPgtype(f.Currency),
		Query:              pgconv.StringPtrToPgtype(f.Query),
		AfterCreatedAt:     afterAt,
		AfterID:            afterID,
		Limit:              limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search orders", err)
	}
	return toOrderViews(rows)
}

func (r *OrderReadStore) ListByShopper(ctx context.Context, shopperID uuid.UUID, status *string, after *queries.Keyset, limit int32) ([]*queries.OrderView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListOrdersByShopper(ctx, r.db, sqlstore.ListOrdersByShopperParams{
		ShopperID:      shopperID,
		Status:         pgconv.StringPtrToPgtype(status),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by shopper", err)
	}
	return toOrderViews(rows)
}

func (r *OrderReadStore) History(ctx context.Context, orderID uuid.UUID) ([]*queries.StatusHistoryView, error) {
	rows, err := r.queries.ListOrderStatusHistory(ctx, r.db, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order history", err)
	}
	out := make([]*queries.StatusHistoryView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.StatusHistoryView{
			ID:        row.ID,
			OrderID:   row.OrderID,
			OldStatus: pgconv.StringPtrFromPgtype(row.OldStatus),
			NewStatus: row.NewStatus,
			ActorID:   pgconv.UUIDPtrFromPgtype(row.ActorID),
			Notes:     pgconv.StringPtrFromPgtype(row.Notes),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func toOrderViews(rows []sqlstore.Orders) ([]*queries.OrderView, error) {
	out := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		v, err := toOrderView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toOrderView(row sqlstore.Orders) (*queries.OrderView, error) {
	o, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order row", err, infra.KindDBFailure)
	}
	return orderView(o), nil
}

// orderView flattens the aggregate and exposes the outgoing status edges.
func orderView(o *order.Order) *queries.OrderView {
	p := o.Product()
	d := o.Destination()
	pr := o.Pricing()
	next := o.Status().AllowedNext()
	allowed := make([]string, 0, len(next))
	for _, s := range next {
		allowed = append(allowed, s.String())
	}
	return &queries.OrderView{
		ID:                    o.ID(),
		ShopperID:             o.ShopperID(),
		MatchedTravelerID:     o.MatchedTravelerID(),
		ProductName:           p.Name(),
		ProductURL:            p.URL(),
		ProductDescription:    p.Description(),
		ProductImageURL:       p.ImageURL(),
		ProductPrice:          p.Price(),
		ProductCurrency:       p.Currency(),
		ProductQuantity:       p.Quantity(),
		DestinationCountry:    d.Country(),
		DestinationCity:       d.City(),
		DestinationAddress:    d.Address(),
		RewardAmount:          pr.Reward(),
		RewardCurrency:        pr.Currency(),
		PlatformFee:           pr.PlatformFee(),
		TotalCost:             pr.TotalCost(),
		Deadline:              o.Deadline(),
		PreferredDeliveryDate: o.PreferredDeliveryDate(),
		SpecialInstructions:   o.SpecialInstructions(),
		WeightEstimate:        o.WeightEstimate(),
		SizeDescription:       o.SizeDescription(),
		Status:                o.Status().String(),
		AllowedNext:           allowed,
		MatchedAt:             o.MatchedAt(),
		PurchasedAt:           o.PurchasedAt(),
		ShippedAt:             o.ShippedAt(),
		DeliveredAt:           o.DeliveredAt(),
		CompletedAt:           o.CompletedAt(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}
