package commands

import (
	"context"

	"marketplace-api/internal/domain/notification"
	domreview "marketplace-api/internal/domain/review"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type CreateReviewRequest struct {
	Rating   int
	Comment  *string
	IsPublic *bool
}

type ReviewCommands interface {
	Create(ctx context.Context, actor shared.Actor, orderID uuid.UUID, req CreateReviewRequest) (*CreateReviewResult, error)
	Respond(ctx context.Context, actor shared.Actor, reviewID uuid.UUID, response string) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, actor shared.Actor, orderID uuid.UUID, req CreateReviewRequest) (*CreateReviewResult, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := tx.Orders().FindByID(ctx, tx.DB(), orderID)
		if derr != nil {
			return notFoundAs(derr, ErrOrderNotFound)
		}
		now := uc.clock.Now()
		rev, derr := domreview.NewReview(o, actor.ID, req.Rating, req.Comment, isPublic, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Reviews().Create(ctx, tx.DB(), rev); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return derr
		}
		createdID = rev.ID()
		return enqueue(ctx, tx, now, notice{
			userID: rev.ReviewedID(),
			kind:   notification.TypeReviewReceived,
			title:  "New review",
			body:   "You received a new review",
			data:   map[string]any{"order_id": orderID.String(), "review_id": rev.ID().String(), "rating": rev.Rating().Value()},
		})
	})
	if err != nil {
		return nil, classify(err)
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewCommandsImpl) Respond(ctx context.Context, actor shared.Actor, reviewID uuid.UUID, response string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, derr := tx.Reviews().FindForUpdate(ctx, tx.DB(), reviewID)
		if derr != nil {
			return notFoundAs(derr, ErrReviewNotFound)
		}
		if derr = rev.Respond(actor.ID, response, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Reviews().SaveResponse(ctx, tx.DB(), rev); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return domreview.ErrAlreadyResponded
			}
			return derr
		}
		return nil
	})
	return classify(err)
}
