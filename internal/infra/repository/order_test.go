//go:build unit

package repository_test

import (
	"context"
	"testing"

	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/tests/common/builder"
	repositorymock "marketplace-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()
	o, initial, err := builder.NewOrderBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("order row then history row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockOrderWriteQueries(ctrl)
		gomock.InOrder(
			queries.EXPECT().CreateOrder(ctx, gomock.Any(), converter.OrderToRow(o)).Return(nil),
			queries.EXPECT().InsertOrderStatusHistory(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, row sqlstore.OrderStatusHistory) error {
					assert.Equal(t, o.ID(), row.OrderID)
					assert.Equal(t, "active", row.NewStatus)
					return nil
				}),
		)

		assert.NoError(t, repository.NewOrderRepository(queries, nil).Create(ctx, nil, o, initial))
	})

	t.Run("insert failure skips history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockOrderWriteQueries(ctrl)
		queries.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23503"})

		err := repository.NewOrderRepository(queries, nil).Create(ctx, nil, o, initial)

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestOrderRepository_RowRoundTrip(t *testing.T) {
	ctx := context.Background()
	travelerID := uuid.New()
	o := builder.NewOrderBuilder().MatchedTo(travelerID, order.StatusInTransit).BuildReconstructed()

	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockOrderWriteQueries(ctrl)
	queries.EXPECT().GetOrderForUpdate(ctx, gomock.Any(), o.ID()).Return(converter.OrderToRow(o), nil)

	got, err := repository.NewOrderRepository(queries, nil).FindForUpdate(ctx, nil, o.ID())

	require.NoError(t, err)
	assert.Equal(t, o.Status(), got.Status())
	assert.Equal(t, &travelerID, got.MatchedTravelerID())
	assert.True(t, o.Pricing().TotalCost().Equal(got.Pricing().TotalCost()))
	assert.Equal(t, o.Destination().City(), got.Destination().City())
}

func TestOrderRepository_MissingRows(t *testing.T) {
	ctx := context.Background()
	o := builder.NewOrderBuilder().BuildReconstructed()

	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockOrderWriteQueries(ctrl)
	queries.EXPECT().GetOrderByID(ctx, gomock.Any(), o.ID()).Return(sqlstore.Orders{}, pgx.ErrNoRows)
	queries.EXPECT().UpdateOrder(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)
	queries.EXPECT().SoftDeleteOrder(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)
	repo := repository.NewOrderRepository(queries, nil)

	_, err := repo.FindByID(ctx, nil, o.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, infra.IsKind(repo.Save(ctx, nil, o), infra.KindNotFound))
	require.NoError(t, o.MarkDeleted(builder.FixedNow))
	assert.True(t, infra.IsKind(repo.Delete(ctx, nil, o), infra.KindNotFound))
}

func TestOrderRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("削除時刻を書き込み行は残す", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		require.NoError(t, o.MarkDeleted(builder.FixedNow))

		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockOrderWriteQueries(ctrl)
		queries.EXPECT().SoftDeleteOrder(ctx, gomock.Any(), sqlstore.SoftDeleteOrderParams{
			ID:        o.ID(),
			DeletedAt: pgconv.TimeToPgtype(builder.FixedNow),
		}).Return(int64(1), nil)

		assert.NoError(t, repository.NewOrderRepository(queries, nil).Delete(ctx, nil, o))
	})

	t.Run("unmarked order is refused", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()

		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockOrderWriteQueries(ctrl)
		queries.EXPECT().SoftDeleteOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := repository.NewOrderRepository(queries, nil).Delete(ctx, nil, o)

		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestReviewRepository_SaveResponse(t *testing.T) {
	ctx := context.Background()
	rev, err := builder.NewReviewBuilder().BuildDomain()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockReviewWriteQueries(ctrl)
	queries.EXPECT().UpdateReviewResponse(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

	err = repository.NewReviewRepository(queries, nil).SaveResponse(ctx, nil, rev)

	assert.True(t, infra.IsKind(err, infra.KindConflict))
}
