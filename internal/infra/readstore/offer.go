package readstore

import (
	"context"
	"time"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferReadQueries interface {
	GetOfferView(ctx context.Context, db sqlstore.DBTX, arg sqlstore.GetOfferViewParams) (sqlstore.OfferViewRow, error)
	ListOfferViewsByOrder(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListOfferViewsByOrderParams) ([]sqlstore.OfferViewRow, error)
	ListOfferViewsByTraveler(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListOfferViewsByTravelerParams) ([]sqlstore.OfferViewRow, error)
	GetOfferStatsByTraveler(ctx context.Context, db sqlstore.DBTX, arg sqlstore.GetOfferStatsByTravelerParams) (sqlstore.OfferStatsRow, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      sqlstore.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db sqlstore.DBTX) *OfferReadStore {
	return &OfferReadStore{queries: queries, db: db}
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*queries.OfferView, error) {
	row, err := r.queries.GetOfferView(ctx, r.db, sqlstore.GetOfferViewParams{Now: pgconv.TimeToPgtype(now), ID: id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get offer view", err)
	}
	return toOfferView(row)
}

func (r *OfferReadStore) ListByOrder(ctx context.Context, orderID uuid.UUID, status *string, now time.Time) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListOfferViewsByOrder(ctx, r.db, sqlstore.ListOfferViewsByOrderParams{
		Now:     pgconv.TimeToPgtype(now),
		OrderID: orderID,
		Status:  pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers by order", err)
	}
	return toOfferViews(rows)
}

func (r *OfferReadStore) ListByTraveler(ctx context.Context, travelerID uuid.UUID, status *string, after *queries.Keyset, limit int32, now time.Time) ([]*queries.OfferView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListOfferViewsByTraveler(ctx, r.db, sqlstore.ListOfferViewsByTravelerParams{
		Now:            pgconv.TimeToPgtype(now),
		TravelerID:     travelerID,
		Status:         pgconv.StringPtrToPgtype(status),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers by traveler", err)
	}
	return toOfferViews(rows)
}

func (r *OfferReadStore) StatsByTraveler(ctx context.Context, travelerID uuid.UUID, now time.Time) (*queries.OfferStats, error) {
	row, err := r.queries.GetOfferStatsByTraveler(ctx, r.db, sqlstore.GetOfferStatsByTravelerParams{
		Now:        pgconv.TimeToPgtype(now),
		TravelerID: travelerID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get offer stats", err)
	}
	return &queries.OfferStats{
		Total:     row.Total,
		Active:    row.Active,
		Accepted:  row.Accepted,
		Withdrawn: row.Withdrawn,
		Rejected:  row.Rejected,
		Expired:   row.Expired,
	}, nil
}

func toOfferViews(rows []sqlstore.OfferViewRow) ([]*queries.OfferView, error) {
	out := make([]*queries.OfferView, 0, len(rows))
	for _, row := range rows {
		v, err := toOfferView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toOfferView(row sqlstore.OfferViewRow) (*queries.OfferView, error) {
	amount, err := pgconv.DecimalPtrFromNumeric(row.ProposedAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode proposed amount", err, infra.KindDBFailure)
	}
	return &queries.OfferView{
		ID:                   row.ID,
		OrderID:              row.OrderID,
		TravelerID:           row.TravelerID,
		TravelerName:         row.TravelerName,
		Message:              pgconv.StringPtrFromPgtype(row.Message),
		ProposedAmount:       amount,
		ProposedDeliveryDate: pgconv.TimePtrFromPgtype(row.ProposedDeliveryDate),
		Status:               row.EffectiveStatus,
		ExpiresAt:            pgconv.TimePtrFromPgtype(row.ExpiresAt),
		OrderShopperID:       row.OrderShopperID,
		OrderStatus:          row.OrderStatus,
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:            pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
