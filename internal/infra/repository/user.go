package repository

import (
	"context"
	"time"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateUserParams) (sqlstore.Users, error)
	GetUserByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Users, error)
	GetUserForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Users, error)
	GetUserByEmail(ctx context.Context, db sqlstore.DBTX, email string) (sqlstore.Users, error)
	UpdateUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateUserParams) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateUserLastLoginParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlstore.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlstore.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

// Create reports KindDuplicateKey when the email is taken.
func (r *UserRepository) Create(ctx context.Context, tx sqlstore.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, conn(tx, r.db), converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, tx sqlstore.DBTX, email user.Email) (*user.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, conn(tx, r.db), email.Value())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return r.toDomain(row)
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, conn(tx, r.db), id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return r.toDomain(row)
}

// FindForUpdate locks the user row until the transaction ends.
func (r *UserRepository) FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserForUpdate(ctx, conn(tx, r.db), id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	return r.toDomain(row)
}

// Save writes the name, profile and active flag.
func (r *UserRepository) Save(ctx context.Context, tx sqlstore.DBTX, u *user.User) error {
	affected, err := r.queries.UpdateUser(ctx, conn(tx, r.db), converter.UserToUpdateParams(u))
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlstore.DBTX, userID uuid.UUID, at time.Time) error {
	affected, err := r.queries.UpdateUserLastLogin(ctx, conn(tx, r.db), sqlstore.UpdateUserLastLoginParams{
		ID:          userID,
		LastLoginAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) toDomain(row sqlstore.Users) (*user.User, error) {
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user row", err)
	}
	return u, nil
}
