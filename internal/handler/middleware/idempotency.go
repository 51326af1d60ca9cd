package middleware

import (
	"net/http"

	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	ctxIdempotencyKey    = "idempotency_key"
)

// RequireIdempotencyKey rejects requests without a uuid Idempotency-Key header.
func RequireIdempotencyKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(idempotencyKeyHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrIdempotencyKeyRequired, "Idempotency-Key header is required", nil)
			return
		}
		key, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
			return
		}
		c.Set(ctxIdempotencyKey, key)
		c.Next()
	}
}

func GetIdempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxIdempotencyKey)
	if !exists {
		return uuid.Nil, false
	}
	key, ok := v.(uuid.UUID)
	return key, ok
}
