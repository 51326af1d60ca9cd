package repository

import (
	"context"
	"time"

	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferWriteQueries interface {
	CreateOffer(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Offers) error
	UpdateOffer(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Offers) (int64, error)
	GetOfferByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Offers, error)
	GetOfferForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Offers, error)
	LockOffersByOrder(ctx context.Context, db sqlstore.DBTX, orderID uuid.UUID) ([]sqlstore.Offers, error)
	LockOffersByOrderAndTraveler(ctx context.Context, db sqlstore.DBTX, arg sqlstore.LockOffersByOrderAndTravelerParams) ([]sqlstore.Offers, error)
	LockDueOffers(ctx context.Context, db sqlstore.DBTX, arg sqlstore.LockDueOffersParams) ([]sqlstore.Offers, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
	db      sqlstore.DBTX
}

func NewOfferRepository(queries OfferWriteQueries, db sqlstore.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
	}
}

// Create maps the partial unique index on live offers to KindDuplicateKey.
func (r *OfferRepository) Create(ctx context.Context, tx sqlstore.DBTX, f *offer.Offer) error {
	if err := r.queries.CreateOffer(ctx, conn(tx, r.db), converter.OfferToRow(f)); err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) Save(ctx context.Context, tx sqlstore.DBTX, f *offer.Offer) error {
	affected, err := r.queries.UpdateOffer(ctx, conn(tx, r.db), converter.OfferToRow(f))
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) SaveAll(ctx context.Context, tx sqlstore.DBTX, offers []*offer.Offer) error {
	for _, f := range offers {
		if err := r.Save(ctx, tx, f); err != nil {
			return err
		}
	}
	return nil
}

// FindByID reads without locking; callers use it to learn the order before taking locks in order-first sequence.
func (r *OfferRepository) FindByID(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOfferByID(ctx, conn(tx, r.db), id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get offer", err)
	}
	f, err := converter.OfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt offer row", err)
	}
	return f, nil
}

func (r *OfferRepository) FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOfferForUpdate(ctx, conn(tx, r.db), id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock offer", err)
	}
	f, err := converter.OfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt offer row", err)
	}
	return f, nil
}

func (r *OfferRepository) LockByOrder(ctx context.Context, tx sqlstore.DBTX, orderID uuid.UUID) ([]*offer.Offer, error) {
	rows, err := r.queries.LockOffersByOrder(ctx, conn(tx, r.db), orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock offers by order", err)
	}
	return r.toDomain(rows)
}

func (r *OfferRepository) LockByOrderAndTraveler(ctx context.Context, tx sqlstore.DBTX, orderID, travelerID uuid.UUID) ([]*offer.Offer, error) {
	rows, err := r.queries.LockOffersByOrderAndTraveler(ctx, conn(tx, r.db), sqlstore.LockOffersByOrderAndTravelerParams{
		OrderID:    orderID,
		TravelerID: travelerID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock traveler offers", err)
	}
	return r.toDomain(rows)
}

// LockDue skips rows locked by concurrent transactions.
func (r *OfferRepository) LockDue(ctx context.Context, tx sqlstore.DBTX, now time.Time, limit int32) ([]*offer.Offer, error) {
	rows, err := r.queries.LockDueOffers(ctx, conn(tx, r.db), sqlstore.LockDueOffersParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock due offers", err)
	}
	return r.toDomain(rows)
}

func (r *OfferRepository) toDomain(rows []sqlstore.Offers) ([]*offer.Offer, error) {
	offers, err := converter.OffersFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt offer row", err)
	}
	return offers, nil
}
