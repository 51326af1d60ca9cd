//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password of every fixture user.
const DefaultPassword = "password123"

// AdminEmail is seeded by SeedReferenceData.
const AdminEmail = "admin@example.com"

// DBLike is the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	hashOnce    sync.Once
	fixtureHash string
)

func passwordHash() string {
	hashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		fixtureHash = string(h)
	})
	return fixtureHash
}

// CreateTestUser inserts an active user, or returns the id of the existing one with that email.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	id, err := insertUser(context.Background(), db, email, role)
	require.NoError(t, err)
	return id
}

func insertUser(ctx context.Context, db DBLike, email, role string) (uuid.UUID, error) {
	id := uuid.New()
	local, _, _ := strings.Cut(email, "@")
	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, first_name, last_name, is_active)
		 VALUES ($1, $2, $3, $4, $5, 'Tester', true)
		 ON CONFLICT (email) DO NOTHING`,
		id, email, passwordHash(), role, local)
	if err != nil {
		return uuid.Nil, err
	}
	if tag.RowsAffected() == 0 {
		if err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id); err != nil {
			return uuid.Nil, err
		}
	}
	return id, nil
}

// DeactivateUser flips is_active off for email.
func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

// SeedReferenceData inserts the admin account; admins cannot self-register.
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := insertUser(context.Background(), pool, AdminEmail, "admin")
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		truncateSQL.Store(buildTruncate(ctx, pool))
	})
	stmt, _ := truncateSQL.Load().(string)
	if stmt == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, stmt); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

func buildTruncate(ctx context.Context, pool *pgxpool.Pool) string {
	rows, err := pool.Query(ctx, `
	  SELECT 'public.' || quote_ident(tablename)
	  FROM pg_tables
	  WHERE schemaname = 'public'`)
	if err != nil {
		return ""
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return ""
	}
	if len(tables) == 0 {
		return "SELECT 1"
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;"
}
