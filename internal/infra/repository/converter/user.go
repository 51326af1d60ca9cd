package converter

import (
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlstore.CreateUserParams {
	return sqlstore.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		FirstName:    u.Name().First(),
		LastName:     u.Name().Last(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserToUpdateParams(u *user.User) sqlstore.UpdateUserParams {
	p := u.Profile()
	return sqlstore.UpdateUserParams{
		ID:             u.ID(),
		FirstName:      u.Name().First(),
		LastName:       u.Name().Last(),
		DisplayName:    pgconv.StringPtrToPgtype(p.DisplayName()),
		Bio:            pgconv.StringPtrToPgtype(p.Bio()),
		Phone:          pgconv.StringPtrToPgtype(p.Phone()),
		PrimaryCountry: pgconv.StringPtrToPgtype(p.PrimaryCountry()),
		PrimaryCity:    pgconv.StringPtrToPgtype(p.PrimaryCity()),
		AvatarURL:      pgconv.StringPtrToPgtype(p.AvatarURL()),
		IsActive:       u.IsActive(),
		UpdatedAt:      pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserFromRow(row sqlstore.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(row.FirstName, row.LastName)
	if err != nil {
		return nil, err
	}
	profile := user.ReconstructProfile(
		pgconv.StringPtrFromPgtype(row.DisplayName),
		pgconv.StringPtrFromPgtype(row.Bio),
		pgconv.StringPtrFromPgtype(row.Phone),
		pgconv.StringPtrFromPgtype(row.PrimaryCountry),
		pgconv.StringPtrFromPgtype(row.PrimaryCity),
		pgconv.StringPtrFromPgtype(row.AvatarURL),
	)
	return user.ReconstructUser(row.ID, email, row.PasswordHash, role, name, profile,
		pgconv.TimePtrFromPgtype(row.LastLoginAt), row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}
