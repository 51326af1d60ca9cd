package readstore

import (
	"context"

	"github.com/google/uuid"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Users, error)
	SearchUsers(ctx context.Context, db sqlstore.DBTX, arg sqlstore.SearchUsersParams) ([]sqlstore.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlstore.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlstore.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toAuthorizedUserView(row), nil
}

func (r *UserReadStore) Search(ctx context.Context, roles []string, query *string, after *queries.Keyset, limit int32) ([]*queries.PublicUserView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.SearchUsers(ctx, r.db, sqlstore.SearchUsersParams{
		Roles:          roles,
		Query:          pgconv.StringPtrToPgtype(query),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search users", err)
	}
	views := make([]*queries.PublicUserView, len(rows))
	for i, row := range rows {
		views[i] = &queries.PublicUserView{
			ID:             row.ID,
			Role:           row.Role,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			DisplayName:    pgconv.StringPtrFromPgtype(row.DisplayName),
			Bio:            pgconv.StringPtrFromPgtype(row.Bio),
			PrimaryCountry: pgconv.StringPtrFromPgtype(row.PrimaryCountry),
			PrimaryCity:    pgconv.StringPtrFromPgtype(row.PrimaryCity),
			AvatarURL:      pgconv.StringPtrFromPgtype(row.AvatarURL),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

func toAuthorizedUserView(row sqlstore.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:             row.ID,
		Email:          row.Email,
		Role:           row.Role,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		DisplayName:    pgconv.StringPtrFromPgtype(row.DisplayName),
		Bio:            pgconv.StringPtrFromPgtype(row.Bio),
		Phone:          pgconv.StringPtrFromPgtype(row.Phone),
		PrimaryCountry: pgconv.StringPtrFromPgtype(row.PrimaryCountry),
		PrimaryCity:    pgconv.StringPtrFromPgtype(row.PrimaryCity),
		AvatarURL:      pgconv.StringPtrFromPgtype(row.AvatarURL),
		IsActive:       row.IsActive,
		LastLoginAt:    pgconv.TimePtrFromPgtype(row.LastLoginAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
