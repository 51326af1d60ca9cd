package commands

import (
	"marketplace-api/internal/domain/conversation"
	"marketplace-api/internal/domain/escrow"
	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/errs"
)

var (
	ErrOrderNotFound        = errs.Mark(errs.New("order not found"), errs.ErrNotFound)
	ErrOfferNotFound        = errs.Mark(errs.New("offer not found"), errs.ErrNotFound)
	ErrEscrowNotFound       = errs.Mark(errs.New("escrow holding not found"), errs.ErrNotFound)
	ErrReviewNotFound       = errs.Mark(errs.New("review not found"), errs.ErrNotFound)
	ErrNotificationNotFound = errs.Mark(errs.New("notification not found"), errs.ErrNotFound)
	ErrConversationNotFound = errs.Mark(errs.New("conversation not found"), errs.ErrNotFound)
	ErrMessageNotFound      = errs.Mark(errs.New("message not found"), errs.ErrNotFound)

	ErrNotOrderShopper  = errs.Mark(errs.New("only the order's shopper may do this"), errs.ErrForbidden)
	ErrNotOfferTraveler = errs.Mark(errs.New("only the offer's traveler may do this"), errs.ErrForbidden)
	ErrShopperRequired  = errs.Mark(errs.New("shopper role required"), errs.ErrForbidden)
	ErrTravelerRequired = errs.Mark(errs.New("traveler role required"), errs.ErrForbidden)
	ErrAdminRequired    = errs.Mark(errs.New("admin role required"), errs.ErrForbidden)
	ErrNotParticipant   = errs.Mark(errs.New("only order participants may do this"), errs.ErrForbidden)

	ErrDuplicateReview = errs.Mark(errs.New("order already reviewed by this user"), errs.ErrConflict)
	ErrEscrowExists    = errs.Mark(errs.New("order already has an escrow holding"), errs.ErrConflict)
)

var (
	permissionErrors = []error{
		order.ErrStatusNotPermitted,
		review.ErrNotParticipant,
		review.ErrNotReviewee,
		notification.ErrNotRecipient,
		conversation.ErrNotParticipant,
		conversation.ErrNotSender,
	}
	stateErrors = []error{
		order.ErrInvalidTransition,
		order.ErrNotEditable,
		order.ErrNotAcceptingOffers,
		order.ErrMatchedViaOfferOnly,
		order.ErrAlreadyDeleted,
		offer.ErrDuplicateActiveOffer,
		offer.ErrNotWithdrawable,
		offer.ErrNotRejectable,
		offer.ErrOfferNotAcceptable,
		offer.ErrNotEditable,
		escrow.ErrEscrowNotReleasable,
		escrow.ErrAlreadyReleased,
		escrow.ErrOrderNotFundable,
		review.ErrOrderNotCompleted,
		review.ErrAlreadyResponded,
		user.ErrAlreadyDeactivated,
		conversation.ErrConversationLocked,
		conversation.ErrConversationClosed,
		conversation.ErrSystemMessageLocked,
	}
	validationErrors = []error{
		order.ErrInvalidStatus,
		order.ErrInvalidReward,
		order.ErrDeadlineNotFuture,
		order.ErrInvalidDeliveryDate,
		order.ErrInvalidProduct,
		order.ErrInvalidProductPrice,
		order.ErrInvalidQuantity,
		order.ErrInvalidCurrency,
		order.ErrInvalidDestination,
		order.ErrInvalidWeight,
		order.ErrTextTooLong,
		offer.ErrSelfOffer,
		offer.ErrOrderMismatch,
		offer.ErrInvalidStatus,
		offer.ErrInvalidAmount,
		offer.ErrDateNotFuture,
		offer.ErrInvalidExpiry,
		offer.ErrMessageTooLong,
		escrow.ErrInvalidEscrowSplit,
		escrow.ErrNegativeAmount,
		escrow.ErrPaymentReference,
		review.ErrInvalidRating,
		review.ErrEmptyComment,
		review.ErrCommentTooLong,
		review.ErrSelfReview,
		review.ErrInvalidReviewerRole,
		user.ErrInvalidEmail,
		user.ErrInvalidRole,
		user.ErrPasswordTooWeak,
		user.ErrInvalidName,
		user.ErrInvalidProfile,
		user.ErrInvalidCountry,
		user.ErrInvalidAvatarURL,
		conversation.ErrInvalidMessageType,
		conversation.ErrEmptyContent,
		conversation.ErrContentTooLong,
		conversation.ErrAttachmentRequired,
		conversation.ErrInvalidAttachment,
	}
)

// classify marks domain and repository failures with the category the transport maps to a status.
// Errors that already carry a category pass through unchanged.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.IsAny(err, errs.ErrNotFound, errs.ErrUnauthorized, errs.ErrForbidden, errs.ErrConflict, errs.ErrValidation,
		errs.ErrIdempotencyInProgress, errs.ErrIdempotencyMismatch, errs.ErrIdempotencyKeyRequired):
		return err
	case errs.IsAny(err, permissionErrors...):
		return errs.Mark(err, errs.ErrForbidden)
	case errs.IsAny(err, stateErrors...):
		return errs.Mark(err, errs.ErrConflict)
	case errs.IsAny(err, validationErrors...):
		return errs.Mark(err, errs.ErrValidation)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrConflict)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

// notFoundAs replaces a repository NOT_FOUND with the use-case sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
