package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const offerColumns = `id, order_id, traveler_id, message, proposed_amount, proposed_delivery_date, status, expires_at,
created_at, updated_at`

func scanOffer(row pgx.Row) (Offers, error) {
	var f Offers
	err := row.Scan(&f.ID, &f.OrderID, &f.TravelerID, &f.Message, &f.ProposedAmount, &f.ProposedDeliveryDate,
		&f.Status, &f.ExpiresAt, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

const createOffer = `INSERT INTO offers (` + offerColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) CreateOffer(ctx context.Context, db DBTX, arg Offers) error {
	_, err := db.Exec(ctx, createOffer, arg.ID, arg.OrderID, arg.TravelerID, arg.Message, arg.ProposedAmount,
		arg.ProposedDeliveryDate, arg.Status, arg.ExpiresAt, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const updateOffer = `UPDATE offers SET message = $2, proposed_amount = $3, proposed_delivery_date = $4, status = $5,
    expires_at = $6, updated_at = $7
WHERE id = $1`

func (q *Queries) UpdateOffer(ctx context.Context, db DBTX, arg Offers) (int64, error) {
	tag, err := db.Exec(ctx, updateOffer, arg.ID, arg.Message, arg.ProposedAmount, arg.ProposedDeliveryDate,
		arg.Status, arg.ExpiresAt, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getOfferByID = `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

func (q *Queries) GetOfferByID(ctx context.Context, db DBTX, id uuid.UUID) (Offers, error) {
	return scanOffer(db.QueryRow(ctx, getOfferByID, id))
}

const getOfferForUpdate = `SELECT ` + offerColumns + ` FROM offers WHERE id = $1 FOR UPDATE`

func (q *Queries) GetOfferForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Offers, error) {
	return scanOffer(db.QueryRow(ctx, getOfferForUpdate, id))
}

const lockOffersByOrder = `SELECT ` + offerColumns + ` FROM offers
WHERE order_id = $1
ORDER BY created_at, id
FOR UPDATE`

func (q *Queries) LockOffersByOrder(ctx context.Context, db DBTX, orderID uuid.UUID) ([]Offers, error) {
	rows, err := db.Query(ctx, lockOffersByOrder, orderID)
	return collect(rows, err, scanOffer)
}

type LockOffersByOrderAndTravelerParams struct {
	OrderID    uuid.UUID
	TravelerID uuid.UUID
}

const lockOffersByOrderAndTraveler = `SELECT ` + offerColumns + ` FROM offers
WHERE order_id = $1 AND traveler_id = $2
FOR UPDATE`

func (q *Queries) LockOffersByOrderAndTraveler(ctx context.Context, db DBTX, arg LockOffersByOrderAndTravelerParams) ([]Offers, error) {
	rows, err := db.Query(ctx, lockOffersByOrderAndTraveler, arg.OrderID, arg.TravelerID)
	return collect(rows, err, scanOffer)
}

type LockDueOffersParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

// lockDueOffers skips rows held by a concurrent accept; they are picked up on a later sweep.
const lockDueOffers = `SELECT ` + offerColumns + ` FROM offers
WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at <= $1
ORDER BY expires_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED`

func (q *Queries) LockDueOffers(ctx context.Context, db DBTX, arg LockDueOffersParams) ([]Offers, error) {
	rows, err := db.Query(ctx, lockDueOffers, arg.Now, arg.Limit)
	return collect(rows, err, scanOffer)
}

// OfferViewRow is an offer with its lazily derived status and the owning order's shopper.
type OfferViewRow struct {
	Offers
	EffectiveStatus string
	OrderShopperID  uuid.UUID
	OrderStatus     string
	TravelerName    string
}

const offerViewSelect = `SELECT f.id, f.order_id, f.traveler_id, f.message, f.proposed_amount, f.proposed_delivery_date,
    f.status, f.expires_at, f.created_at, f.updated_at,
    CASE WHEN f.status = 'active' AND f.expires_at IS NOT NULL AND f.expires_at < $1 THEN 'expired' ELSE f.status END AS effective_status,
    o.shopper_id AS order_shopper_id, o.status AS order_status, u.first_name || ' ' || u.last_name AS traveler_name
FROM offers f
JOIN orders o ON o.id = f.order_id AND o.deleted_at IS NULL
JOIN users u ON u.id = f.traveler_id`

func scanOfferView(row pgx.Row) (OfferViewRow, error) {
	var v OfferViewRow
	err := row.Scan(&v.ID, &v.OrderID, &v.TravelerID, &v.Message, &v.ProposedAmount, &v.ProposedDeliveryDate,
		&v.Status, &v.ExpiresAt, &v.CreatedAt, &v.UpdatedAt, &v.EffectiveStatus, &v.OrderShopperID, &v.OrderStatus,
		&v.TravelerName)
	return v, err
}

type GetOfferViewParams struct {
	Now pgtype.Timestamptz
	ID  uuid.UUID
}

const getOfferView = offerViewSelect + ` WHERE f.id = $2`

func (q *Queries) GetOfferView(ctx context.Context, db DBTX, arg GetOfferViewParams) (OfferViewRow, error) {
	return scanOfferView(db.QueryRow(ctx, getOfferView, arg.Now, arg.ID))
}

type ListOfferViewsByOrderParams struct {
	Now     pgtype.Timestamptz
	OrderID uuid.UUID
	Status  pgtype.Text
}

const listOfferViewsByOrder = `SELECT * FROM (` + offerViewSelect + ` WHERE f.order_id = $2) v
WHERE ($3::text IS NULL OR v.effective_status = $3)
ORDER BY v.created_at DESC, v.id DESC`

func (q *Queries) ListOfferViewsByOrder(ctx context.Context, db DBTX, arg ListOfferViewsByOrderParams) ([]OfferViewRow, error) {
	rows, err := db.Query(ctx, listOfferViewsByOrder, arg.Now, arg.OrderID, arg.Status)
	return collect(rows, err, scanOfferView)
}

type ListOfferViewsByTravelerParams struct {
	Now            pgtype.Timestamptz
	TravelerID     uuid.UUID
	Status         pgtype.Text
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

const listOfferViewsByTraveler = `SELECT * FROM (` + offerViewSelect + ` WHERE f.traveler_id = $2) v
WHERE ($3::text IS NULL OR v.effective_status = $3)
  AND ($4::timestamptz IS NULL OR (v.created_at, v.id) < ($4, $5::uuid))
ORDER BY v.created_at DESC, v.id DESC
LIMIT $6`

func (q *Queries) ListOfferViewsByTraveler(ctx context.Context, db DBTX, arg ListOfferViewsByTravelerParams) ([]OfferViewRow, error) {
	rows, err := db.Query(ctx, listOfferViewsByTraveler, arg.Now, arg.TravelerID, arg.Status, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	return collect(rows, err, scanOfferView)
}

type GetOfferStatsByTravelerParams struct {
	Now        pgtype.Timestamptz
	TravelerID uuid.UUID
}

type OfferStatsRow struct {
	Total     int64
	Active    int64
	Accepted  int64
	Withdrawn int64
	Rejected  int64
	Expired   int64
}

const getOfferStatsByTraveler = `SELECT
    count(*),
    count(*) FILTER (WHERE status = 'active' AND (expires_at IS NULL OR expires_at >= $1)),
    count(*) FILTER (WHERE status = 'accepted'),
    count(*) FILTER (WHERE status = 'withdrawn'),
    count(*) FILTER (WHERE status = 'rejected'),
    count(*) FILTER (WHERE status = 'expired' OR (status = 'active' AND expires_at < $1))
FROM offers
WHERE traveler_id = $2`

func (q *Queries) GetOfferStatsByTraveler(ctx context.Context, db DBTX, arg GetOfferStatsByTravelerParams) (OfferStatsRow, error) {
	var s OfferStatsRow
	err := db.QueryRow(ctx, getOfferStatsByTraveler, arg.Now, arg.TravelerID).
		Scan(&s.Total, &s.Active, &s.Accepted, &s.Withdrawn, &s.Rejected, &s.Expired)
	return s, err
}
