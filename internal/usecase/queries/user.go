package queries

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"

	"github.com/google/uuid"
)

// MinUserSearchLength is the shortest name fragment the directory search accepts.
const MinUserSearchLength = 2

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	// GetPublicProfile hides deactivated accounts.
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (*PublicUserView, error)
	Search(ctx context.Context, filter UserSearchFilter, cursor *Cursor, limit int) ([]*PublicUserView, *Cursor, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	Search(ctx context.Context, roles []string, query *string, after *Keyset, limit int32) ([]*PublicUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*PublicUserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	if !u.IsActive {
		return nil, ErrUserNotFound
	}
	return &PublicUserView{
		ID:             u.ID,
		Role:           u.Role,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		DisplayName:    u.DisplayName,
		Bio:            u.Bio,
		PrimaryCountry: u.PrimaryCountry,
		PrimaryCity:    u.PrimaryCity,
		AvatarURL:      u.AvatarURL,
		CreatedAt:      u.CreatedAt,
	}, nil
}

func (q *userQueriesImpl) Search(ctx context.Context, filter UserSearchFilter, cursor *Cursor, limit int) ([]*PublicUserView, *Cursor, error) {
	roles, err := directoryRoles(filter.Role)
	if err != nil {
		return nil, nil, err
	}
	var query *string
	if filter.Query != nil {
		t := strings.TrimSpace(*filter.Query)
		if utf8.RuneCountInString(t) < MinUserSearchLength {
			return nil, nil, ErrInvalidFilter
		}
		query = &t
	}
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.readStore.Search(ctx, roles, query, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(v *PublicUserView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return page, next, nil
}

// directoryRoles maps a directory filter to stored roles. Admin accounts are never listed.
func directoryRoles(role string) ([]string, error) {
	switch role {
	case "":
		return []string{user.RoleShopper.String(), user.RoleTraveler.String(), user.RoleBoth.String()}, nil
	case user.RoleShopper.String():
		return []string{user.RoleShopper.String(), user.RoleBoth.String()}, nil
	case user.RoleTraveler.String():
		return []string{user.RoleTraveler.String(), user.RoleBoth.String()}, nil
	default:
		return nil, ErrInvalidFilter
	}
}
