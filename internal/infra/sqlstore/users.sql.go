package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, password_hash, role, first_name, last_name, display_name, bio, phone,
primary_country, primary_city, avatar_url, is_active, last_login_at, created_at, updated_at`

func scanUser(row pgx.Row) (Users, error) {
	var u Users
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName, &u.LastName,
		&u.DisplayName, &u.Bio, &u.Phone, &u.PrimaryCountry, &u.PrimaryCity, &u.AvatarURL,
		&u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const createUser = `INSERT INTO users (id, email, password_hash, role, first_name, last_name, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + userColumns

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (Users, error) {
	row := db.QueryRow(ctx, createUser, arg.ID, arg.Email, arg.PasswordHash, arg.Role, arg.FirstName, arg.LastName,
		arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	return scanUser(row)
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const getUserForUpdate = getUserByID + ` FOR UPDATE`

func (q *Queries) GetUserForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserForUpdate, id))
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const updateUserLastLogin = `UPDATE users SET last_login_at = $2, updated_at = $2 WHERE id = $1`

type UpdateUserLastLoginParams struct {
	ID          uuid.UUID
	LastLoginAt pgtype.Timestamptz
}

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, arg UpdateUserLastLoginParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUserLastLogin, arg.ID, arg.LastLoginAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateUser = `UPDATE users SET
    first_name = $2, last_name = $3, display_name = $4, bio = $5, phone = $6,
    primary_country = $7, primary_city = $8, avatar_url = $9, is_active = $10, updated_at = $11
WHERE id = $1`

type UpdateUserParams struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	DisplayName    pgtype.Text
	Bio            pgtype.Text
	Phone          pgtype.Text
	PrimaryCountry pgtype.Text
	PrimaryCity    pgtype.Text
	AvatarURL      pgtype.Text
	IsActive       bool
	UpdatedAt      pgtype.Timestamptz
}

func (q *Queries) UpdateUser(ctx context.Context, db DBTX, arg UpdateUserParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUser, arg.ID, arg.FirstName, arg.LastName, arg.DisplayName, arg.Bio, arg.Phone,
		arg.PrimaryCountry, arg.PrimaryCity, arg.AvatarURL, arg.IsActive, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type SearchUsersParams struct {
	Roles          []string
	Query          pgtype.Text
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

const searchUsers = `SELECT ` + userColumns + ` FROM users
WHERE is_active
  AND role = ANY($1::text[])
  AND ($2::text IS NULL OR first_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%' OR display_name ILIKE '%' || $2 || '%')
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5`

func (q *Queries) SearchUsers(ctx context.Context, db DBTX, arg SearchUsersParams) ([]Users, error) {
	rows, err := db.Query(ctx, searchUsers, arg.Roles, arg.Query, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	return collect(rows, err, scanUser)
}
