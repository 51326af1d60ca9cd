//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.Mark(errs.New("order not found"), errs.ErrNotFound), http.StatusNotFound},
		{"unauthorized", errs.Mark(errs.New("invalid credentials"), errs.ErrUnauthorized), http.StatusUnauthorized},
		{"forbidden", errs.Mark(errs.New("not yours"), errs.ErrForbidden), http.StatusForbidden},
		{"validation", errs.Mark(errs.New("bad reward"), errs.ErrValidation), http.StatusBadRequest},
		{"conflict", errs.Mark(errs.New("invalid transition"), errs.ErrConflict), http.StatusConflict},
		{"idempotency mismatch", errs.ErrIdempotencyMismatch, http.StatusConflict},
		{"idempotency in progress", errs.ErrIdempotencyInProgress, http.StatusConflict},
		{"idempotency key required", errs.ErrIdempotencyKeyRequired, http.StatusBadRequest},
		{"wrapped category", errs.Wrap(errs.Mark(errs.New("gone"), errs.ErrNotFound), "load"), http.StatusNotFound},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client errors expose the message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		httperr.Abort(c, errs.Mark(errs.New("order not found"), errs.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "order not found", body["error"].(map[string]any)["message"])
	})

	t.Run("server errors hide the message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		httperr.Abort(c, errors.New("connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}
