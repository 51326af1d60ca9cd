package queries

import (
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/errs"
)

var (
	ErrInvalidCursor = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
	ErrInvalidFilter = errs.Mark(errs.New("invalid list filter"), errs.ErrValidation)

	ErrOrderNotFound         = errs.Mark(errs.New("order not found"), errs.ErrNotFound)
	ErrOrderAccess           = errs.Mark(errs.New("order access denied"), errs.ErrForbidden)
	ErrSearchStatusForbidden = errs.Mark(errs.New("only active orders can be searched"), errs.ErrForbidden)
	ErrOfferNotFound         = errs.Mark(errs.New("offer not found"), errs.ErrNotFound)
	ErrOfferAccess           = errs.Mark(errs.New("offer access denied"), errs.ErrForbidden)
	ErrEscrowNotFound        = errs.Mark(errs.New("escrow holding not found"), errs.ErrNotFound)
	ErrEscrowAccess          = errs.Mark(errs.New("escrow access denied"), errs.ErrForbidden)
	ErrReviewNotFound        = errs.Mark(errs.New("review not found"), errs.ErrNotFound)
	ErrUserNotFound          = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrUserInactive          = errs.Mark(errs.New("user inactive"), errs.ErrForbidden)
	ErrNotificationNotFound  = errs.Mark(errs.New("notification not found"), errs.ErrNotFound)
	ErrConversationNotFound  = errs.Mark(errs.New("conversation not found"), errs.ErrNotFound)
)

// notFoundAs maps a repository not-found error to target and passes anything else through.
func notFoundAs(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}
