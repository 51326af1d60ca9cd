package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errUnauthenticated = errors.New("unauthenticated")

// actorOrAbort is only reached behind RequireAuth; a missing identity is a wiring bug.
func actorOrAbort(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads limit and after. A malformed limit falls back to the default.
func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func optionalQuery(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok && v != "" {
		return &v
	}
	return nil
}

type queryParseError struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func optionalDecimal(c *gin.Context, key string) (*decimal.Decimal, *queryParseError) {
	v := optionalQuery(c, key)
	if v == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*v)
	if err != nil {
		return nil, &queryParseError{Field: key, Value: *v}
	}
	return &d, nil
}

// optionalDate accepts RFC 3339 or a bare YYYY-MM-DD date (UTC midnight).
func optionalDate(c *gin.Context, key string) (*time.Time, *queryParseError) {
	v := optionalQuery(c, key)
	if v == nil {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *v); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.DateOnly, *v); err == nil {
		return &t, nil
	}
	return nil, &queryParseError{Field: key, Value: *v}
}

func optionalInt(c *gin.Context, key string) (*int, *queryParseError) {
	v := optionalQuery(c, key)
	if v == nil {
		return nil, nil
	}
	i, err := strconv.Atoi(*v)
	if err != nil {
		return nil, &queryParseError{Field: key, Value: *v}
	}
	return &i, nil
}

func abortQuery(c *gin.Context, perr *queryParseError) {
	httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid query parameter "+perr.Field), "Invalid query parameter", perr)
}
