package converter

import (
	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/pgconv"
)

func OfferToRow(f *offer.Offer) sqlstore.Offers {
	return sqlstore.Offers{
		ID:                   f.ID(),
		OrderID:              f.OrderID(),
		TravelerID:           f.TravelerID(),
		Message:              pgconv.StringPtrToPgtype(f.Message()),
		ProposedAmount:       pgconv.DecimalPtrToNumeric(f.ProposedAmount()),
		ProposedDeliveryDate: pgconv.TimePtrToPgtype(f.ProposedDeliveryDate()),
		Status:               f.Status().String(),
		ExpiresAt:            pgconv.TimePtrToPgtype(f.ExpiresAt()),
		CreatedAt:            pgconv.TimeToPgtype(f.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(f.UpdatedAt()),
	}
}

func OfferFromRow(row sqlstore.Offers) (*offer.Offer, error) {
	status, err := offer.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "offer %s", row.ID)
	}
	amount, err := pgconv.DecimalPtrFromNumeric(row.ProposedAmount)
	if err != nil {
		return nil, errs.Wrap(err, "proposed_amount")
	}
	return offer.ReconstructOffer(
		row.ID, row.OrderID, row.TravelerID,
		pgconv.StringPtrFromPgtype(row.Message),
		amount,
		pgconv.TimePtrFromPgtype(row.ProposedDeliveryDate),
		status,
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func OffersFromRows(rows []sqlstore.Offers) ([]*offer.Offer, error) {
	offers := make([]*offer.Offer, 0, len(rows))
	for _, row := range rows {
		f, err := OfferFromRow(row)
		if err != nil {
			return nil, err
		}
		offers = append(offers, f)
	}
	return offers, nil
}
