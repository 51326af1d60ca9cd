package converter

import (
	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func OrderToRow(o *order.Order) sqlstore.Orders {
	p := o.Product()
	d := o.Destination()
	pr := o.Pricing()
	return sqlstore.Orders{
		ID:                    o.ID(),
		ShopperID:             o.ShopperID(),
		MatchedTravelerID:     pgconv.UUIDPtrToPgtype(o.MatchedTravelerID()),
		ProductName:           p.Name(),
		ProductURL:            p.URL(),
		ProductDescription:    pgconv.StringPtrToPgtype(p.Description()),
		ProductImageURL:       pgconv.StringPtrToPgtype(p.ImageURL()),
		ProductPrice:          pgconv.DecimalToNumeric(p.Price()),
		ProductCurrency:       p.Currency(),
		ProductQuantity:       int32(p.Quantity()), // #nosec G115 -- quantity is bounded by request validation
		DestinationCountry:    d.Country(),
		DestinationCity:       d.City(),
		DestinationAddress:    pgconv.StringPtrToPgtype(d.Address()),
		RewardAmount:          pgconv.DecimalToNumeric(pr.Reward()),
		RewardCurrency:        pr.Currency(),
		PlatformFee:           pgconv.DecimalToNumeric(pr.PlatformFee()),
		TotalCost:             pgconv.DecimalToNumeric(pr.TotalCost()),
		Deadline:              pgconv.TimeToPgtype(o.Deadline()),
		PreferredDeliveryDate: pgconv.TimePtrToPgtype(o.PreferredDeliveryDate()),
		SpecialInstructions:   pgconv.StringPtrToPgtype(o.SpecialInstructions()),
		WeightEstimate:        pgconv.DecimalPtrToNumeric(o.WeightEstimate()),
		SizeDescription:       pgconv.StringPtrToPgtype(o.SizeDescription()),
		Status:                o.Status().String(),
		MatchedAt:             pgconv.TimePtrToPgtype(o.MatchedAt()),
		PurchasedAt:           pgconv.TimePtrToPgtype(o.PurchasedAt()),
		ShippedAt:             pgconv.TimePtrToPgtype(o.ShippedAt()),
		DeliveredAt:           pgconv.TimePtrToPgtype(o.DeliveredAt()),
		CompletedAt:           pgconv.TimePtrToPgtype(o.CompletedAt()),
		CreatedAt:             pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderFromRow(row sqlstore.Orders) (*order.Order, error) {
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}
	price, err := pgconv.DecimalFromNumeric(row.ProductPrice)
	if err != nil {
		return nil, errs.Wrap(err, "product_price")
	}
	reward, err := pgconv.DecimalFromNumeric(row.RewardAmount)
	if err != nil {
		return nil, errs.Wrap(err, "reward_amount")
	}
	fee, err := pgconv.DecimalFromNumeric(row.PlatformFee)
	if err != nil {
		return nil, errs.Wrap(err, "platform_fee")
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalCost)
	if err != nil {
		return nil, errs.Wrap(err, "total_cost")
	}
	weight, err := pgconv.DecimalPtrFromNumeric(row.WeightEstimate)
	if err != nil {
		return nil, errs.Wrap(err, "weight_estimate")
	}

	return order.ReconstructOrder(order.ReconstructInput{
		ID:                row.ID,
		ShopperID:         row.ShopperID,
		MatchedTravelerID: pgconv.UUIDPtrFromPgtype(row.MatchedTravelerID),
		Product: order.ReconstructProduct(order.ProductInput{
			Name:        row.ProductName,
			URL:         row.ProductURL,
			Description: pgconv.StringPtrFromPgtype(row.ProductDescription),
			ImageURL:    pgconv.StringPtrFromPgtype(row.ProductImageURL),
			Price:       price,
			Currency:    row.ProductCurrency,
			Quantity:    int(row.ProductQuantity),
		}),
		Destination:           order.ReconstructDestination(row.DestinationCountry, row.DestinationCity, pgconv.StringPtrFromPgtype(row.DestinationAddress)),
		Pricing:               order.ReconstructPricing(reward, fee, total, row.RewardCurrency),
		Deadline:              pgconv.TimeFromPgtype(row.Deadline),
		PreferredDeliveryDate: pgconv.TimePtrFromPgtype(row.PreferredDeliveryDate),
		SpecialInstructions:   pgconv.StringPtrFromPgtype(row.SpecialInstructions),
		WeightEstimate:        weight,
		SizeDescription:       pgconv.StringPtrFromPgtype(row.SizeDescription),
		Status:                status,
		MatchedAt:             pgconv.TimePtrFromPgtype(row.MatchedAt),
		PurchasedAt:           pgconv.TimePtrFromPgtype(row.PurchasedAt),
		ShippedAt:             pgconv.TimePtrFromPgtype(row.ShippedAt),
		DeliveredAt:           pgconv.TimePtrFromPgtype(row.DeliveredAt),
		CompletedAt:           pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func HistoryToRow(h *order.StatusHistory) sqlstore.OrderStatusHistory {
	old := pgtype.Text{}
	if s := h.OldStatus(); s != nil {
		old = pgconv.StringToPgtype(s.String())
	}
	return sqlstore.OrderStatusHistory{
		ID:        h.ID(),
		OrderID:   h.OrderID(),
		OldStatus: old,
		NewStatus: h.NewStatus().String(),
		ActorID:   pgconv.UUIDPtrToPgtype(h.ActorID()),
		Notes:     pgconv.StringPtrToPgtype(h.Notes()),
		CreatedAt: pgconv.TimeToPgtype(h.CreatedAt()),
	}
}

func HistoryFromRow(row sqlstore.OrderStatusHistory) (*order.StatusHistory, error) {
	next, err := order.ParseStatus(row.NewStatus)
	if err != nil {
		return nil, err
	}
	var old *order.Status
	if row.OldStatus.Valid {
		s, err := order.ParseStatus(row.OldStatus.String)
		if err != nil {
			return nil, err
		}
		old = &s
	}
	return order.ReconstructStatusHistory(row.ID, row.OrderID, old, next, pgconv.UUIDPtrFromPgtype(row.ActorID),
		pgconv.StringPtrFromPgtype(row.Notes), pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
