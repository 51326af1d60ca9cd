package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, shopper_id, matched_traveler_id, product_name, product_url, product_description,
product_image_url, product_price, product_currency, product_quantity, destination_country, destination_city,
destination_address, reward_amount, reward_currency, platform_fee, total_cost, deadline, preferred_delivery_date,
special_instructions, weight_estimate, size_description, status, matched_at, purchased_at, shipped_at,
delivered_at, completed_at, created_at, updated_at`

func scanOrder(row pgx.Row) (Orders, error) {
	var o Orders
	err := row.Scan(&o.ID, &o.ShopperID, &o.MatchedTravelerID, &o.ProductName, &o.ProductURL, &o.ProductDescription,
		&o.ProductImageURL, &o.ProductPrice, &o.ProductCurrency, &o.ProductQuantity, &o.DestinationCountry, &o.DestinationCity,
		&o.DestinationAddress, &o.RewardAmount, &o.RewardCurrency, &o.PlatformFee, &o.TotalCost, &o.Deadline, &o.PreferredDeliveryDate,
		&o.SpecialInstructions, &o.WeightEstimate, &o.SizeDescription, &o.Status, &o.MatchedAt, &o.PurchasedAt, &o.ShippedAt,
		&o.DeliveredAt, &o.CompletedAt, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func orderArgs(o Orders) []any {
	return []any{o.ID, o.ShopperID, o.MatchedTravelerID, o.ProductName, o.ProductURL, o.ProductDescription,
		o.ProductImageURL, o.ProductPrice, o.ProductCurrency, o.ProductQuantity, o.DestinationCountry, o.DestinationCity,
		o.DestinationAddress, o.RewardAmount, o.RewardCurrency, o.PlatformFee, o.TotalCost, o.Deadline, o.PreferredDeliveryDate,
		o.SpecialInstructions, o.WeightEstimate, o.SizeDescription, o.Status, o.MatchedAt, o.PurchasedAt, o.ShippedAt,
		o.DeliveredAt, o.CompletedAt, o.CreatedAt, o.UpdatedAt}
}

const createOrder = `INSERT INTO orders (` + orderColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
        $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)`

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg Orders) error {
	_, err := db.Exec(ctx, createOrder, orderArgs(arg)...)
	return err
}

// updateOrder rewrites every mutable column; id, shopper_id and created_at are fixed.
const updateOrder = `UPDATE orders SET
    matched_traveler_id = $3, product_name = $4, product_url = $5, product_description = $6,
    product_image_url = $7, product_price = $8, product_currency = $9, product_quantity = $10,
    destination_country = $11, destination_city = $12, destination_address = $13, reward_amount = $14,
    reward_currency = $15, platform_fee = $16, total_cost = $17, deadline = $18, preferred_delivery_date = $19,
    special_instructions = $20, weight_estimate = $21, size_description = $22, status = $23, matched_at = $24,
    purchased_at = $25, shipped_at = $26, delivered_at = $27, completed_at = $28, updated_at = $30
WHERE id = $1 AND shopper_id = $2 AND created_at = $29`

func (q *Queries) UpdateOrder(ctx context.Context, db DBTX, arg Orders) (int64, error) {
	tag, err := db.Exec(ctx, updateOrder, orderArgs(arg)...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getOrderByID = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetOrderByID(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrderByID, id))
}

const getOrderForUpdate = getOrderByID + ` FOR UPDATE`

func (q *Queries) GetOrderForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrderForUpdate, id))
}

// softDeleteOrder keeps the row so history, offers and idempotency records still point at it.
const softDeleteOrder = `UPDATE orders SET deleted_at = $2, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL`

type SoftDeleteOrderParams struct {
	ID        uuid.UUID
	DeletedAt pgtype.Timestamptz
}

func (q *Queries) SoftDeleteOrder(ctx context.Context, db DBTX, arg SoftDeleteOrderParams) (int64, error) {
	tag, err := db.Exec(ctx, softDeleteOrder, arg.ID, arg.DeletedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SearchOrdersParams filters are optional; a NULL param disables its predicate.
type SearchOrdersParams struct {
	Status             string
	ExcludeShopperID   pgtype.UUID
	DestinationCountry pgtype.Text
	DestinationCity    pgtype.Text
	MinReward          pgtype.Numeric
	MaxReward          pgtype.Numeric
	DeadlineBefore     pgtype.Timestamptz
	DeadlineAfter      pgtype.Timestamptz
	Currency           pgtype.Text
	Query              pgtype.Text
	AfterCreatedAt     pgtype.Timestamptz
	AfterID            pgtype.UUID
	Limit              int32
}

const searchOrders = `SELECT ` + orderColumns + ` FROM orders
WHERE status = $1
  AND deleted_at IS NULL
  AND ($2::uuid IS NULL OR shopper_id <> $2)
  AND ($3::text IS NULL OR destination_country = $3)
  AND ($4::text IS NULL OR destination_city ILIKE $4)
  AND ($5::numeric IS NULL OR reward_amount >= $5)
  AND ($6::numeric IS NULL OR reward_amount <= $6)
  AND ($7::timestamptz IS NULL OR deadline <= $7)
  AND ($8::timestamptz IS NULL OR deadline >= $8)
  AND ($9::text IS NULL OR reward_currency = $9)
  AND ($10::text IS NULL OR product_name ILIKE '%' || $10 || '%' OR product_description ILIKE '%' || $10 || '%')
  AND ($11::timestamptz IS NULL OR (created_at, id) < ($11, $12::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $13`

func (q *Queries) SearchOrders(ctx context.Context, db DBTX, arg SearchOrdersParams) ([]Orders, error) {
	rows, err := db.Query(ctx, searchOrders, arg.Status, arg.ExcludeShopperID, arg.DestinationCountry, arg.DestinationCity,
		arg.MinReward, arg.MaxReward, arg.DeadlineBefore, arg.DeadlineAfter, arg.Currency, arg.Query,
		arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	return collect(rows, err, scanOrder)
}

type ListOrdersByShopperParams struct {
	ShopperID      uuid.UUID
	Status         pgtype.Text
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

const listOrdersByShopper = `SELECT ` + orderColumns + ` FROM orders
WHERE shopper_id = $1
  AND deleted_at IS NULL
  AND ($2::text IS NULL OR status = $2)
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5`

func (q *Queries) ListOrdersByShopper(ctx context.Context, db DBTX, arg ListOrdersByShopperParams) ([]Orders, error) {
	rows, err := db.Query(ctx, listOrdersByShopper, arg.ShopperID, arg.Status, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	return collect(rows, err, scanOrder)
}

const historyColumns = `id, order_id, old_status, new_status, actor_id, notes, created_at`

func scanHistory(row pgx.Row) (OrderStatusHistory, error) {
	var h OrderStatusHistory
	err := row.Scan(&h.ID, &h.OrderID, &h.OldStatus, &h.NewStatus, &h.ActorID, &h.Notes, &h.CreatedAt)
	return h, err
}

const insertOrderStatusHistory = `INSERT INTO order_status_history (` + historyColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) InsertOrderStatusHistory(ctx context.Context, db DBTX, arg OrderStatusHistory) error {
	_, err := db.Exec(ctx, insertOrderStatusHistory, arg.ID, arg.OrderID, arg.OldStatus, arg.NewStatus, arg.ActorID, arg.Notes, arg.CreatedAt)
	return err
}

const listOrderStatusHistory = `SELECT ` + historyColumns + ` FROM order_status_history
WHERE order_id = $1
ORDER BY created_at, id`

func (q *Queries) ListOrderStatusHistory(ctx context.Context, db DBTX, orderID uuid.UUID) ([]OrderStatusHistory, error) {
	rows, err := db.Query(ctx, listOrderStatusHistory, orderID)
	return collect(rows, err, scanHistory)
}
