package commands

import (
	"context"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"
)

type UserCommands interface {
	UpdateProfile(ctx context.Context, actor shared.Actor, in user.ProfileUpdate) error
	// Deactivate closes the actor's account. Issued access tokens stay valid until they expire.
	Deactivate(ctx context.Context, actor shared.Actor) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (c *userCommandsImpl) UpdateProfile(ctx context.Context, actor shared.Actor, in user.ProfileUpdate) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindForUpdate(ctx, tx.DB(), actor.ID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		if err := u.UpdateProfile(in, c.clock.Now()); err != nil {
			return err
		}
		return tx.Users().Save(ctx, tx.DB(), u)
	})
	return classify(err)
}

func (c *userCommandsImpl) Deactivate(ctx context.Context, actor shared.Actor) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindForUpdate(ctx, tx.DB(), actor.ID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		if err := u.Deactivate(c.clock.Now()); err != nil {
			return err
		}
		return tx.Users().Save(ctx, tx.DB(), u)
	})
	return classify(err)
}
