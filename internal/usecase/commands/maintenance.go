package commands

import (
	"context"

	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"
)

type MaintenanceCommands interface {
	PurgeIdempotencyKeys(ctx context.Context) (int64, error)
}

type maintenanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow, clock: clk}
}

func (c *maintenanceCommandsImpl) PurgeIdempotencyKeys(ctx context.Context) (int64, error) {
	d := c.uow.Direct()
	n, err := d.Idempotency().DeleteExpired(ctx, d.DB(), c.clock.Now())
	if err != nil {
		return 0, classify(err)
	}
	return n, nil
}
