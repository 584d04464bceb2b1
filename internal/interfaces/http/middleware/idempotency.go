package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/repairshop/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Idempotency header and limits
const (
	IdempotencyKeyHeader    = "Idempotency-Key"
	MaxIdempotencyKeyLength = 255
	DefaultIdempotencyTTL   = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Store  shared.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// Idempotency rejects a replayed Idempotency-Key with 409 while the first
// request's claim is alive. Keys are scoped per company and route, so two
// companies may reuse the same key. Requests without the header pass through.
//
// A failed request releases its key so the client can retry with it.
// Mount after JWT.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.Store == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultIdempotencyTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > MaxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeValidation, "Idempotency-Key is too long", GetRequestID(c)))
			return
		}

		var companyID string
		if tc, ok := GetTenantContext(c); ok {
			companyID = tc.CompanyID
		}
		scoped := companyID + ":" + c.Request.Method + ":" + c.FullPath() + ":" + key

		claimed, err := cfg.Store.Claim(c.Request.Context(), scoped, cfg.TTL)
		if err != nil {
			// fail open
			cfg.Logger.Error("Failed to claim idempotency key",
				zap.String("company_id", companyID),
				zap.Error(err))
			c.Next()
			return
		}
		if !claimed {
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeConflict, "A request with this Idempotency-Key was already processed", GetRequestID(c)))
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			// request context may already be cancelled
			if err := cfg.Store.Release(context.WithoutCancel(c.Request.Context()), scoped); err != nil {
				cfg.Logger.Warn("Failed to release idempotency key", zap.Error(err))
			}
		}
	}
}
