package converter

import (
	"marketplace-api/internal/domain/escrow"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/pgconv"
)

func HoldingToRow(h *escrow.Holding) sqlstore.EscrowHoldings {
	return sqlstore.EscrowHoldings{
		ID:                h.ID(),
		OrderID:           h.OrderID(),
		PaymentReference:  h.PaymentReference(),
		TotalAmount:       pgconv.DecimalToNumeric(h.TotalAmount()),
		PlatformFee:       pgconv.DecimalToNumeric(h.PlatformFee()),
		TravelerPayout:    pgconv.DecimalToNumeric(h.TravelerPayout()),
		Currency:          h.Currency(),
		IsReleased:        h.IsReleased(),
		ReleasedAt:        pgconv.TimePtrToPgtype(h.ReleasedAt()),
		IsDisputed:        h.IsDisputed(),
		DisputedAt:        pgconv.TimePtrToPgtype(h.DisputedAt()),
		DisputeResolution: pgconv.StringPtrToPgtype(h.DisputeResolution()),
		CreatedAt:         pgconv.TimeToPgtype(h.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(h.UpdatedAt()),
	}
}

func HoldingFromRow(row sqlstore.EscrowHoldings) (*escrow.Holding, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, errs.Wrap(err, "total_amount")
	}
	fee, err := pgconv.DecimalFromNumeric(row.PlatformFee)
	if err != nil {
		return nil, errs.Wrap(err, "platform_fee")
	}
	payout, err := pgconv.DecimalFromNumeric(row.TravelerPayout)
	if err != nil {
		return nil, errs.Wrap(err, "traveler_payout")
	}
	return escrow.ReconstructHolding(
		row.ID, row.OrderID,
		row.PaymentReference,
		total, fee, payout,
		row.Currency,
		row.IsReleased, pgconv.TimePtrFromPgtype(row.ReleasedAt),
		row.IsDisputed, pgconv.TimePtrFromPgtype(row.DisputedAt),
		pgconv.StringPtrFromPgtype(row.DisputeResolution),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
