package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/repairshop/backend/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenIdempotencyStore struct{}

func (brokenIdempotencyStore) Claim(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("store unavailable")
}
func (brokenIdempotencyStore) Release(context.Context, string) error { return nil }
func (brokenIdempotencyStore) Close() error                          { return nil }

// newIdempotentRouter stands in for JWT by reading the company from X-Company
func newIdempotentRouter(t *testing.T, store shared.IdempotencyStore, status *int) *gin.Engine {
	t.Helper()
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(TenantContextKey, shared.TenantContext{CompanyID: c.GetHeader("X-Company"), UserID: "user-1"})
		c.Next()
	})
	router.POST("/work-orders", Idempotency(IdempotencyConfig{Store: store, TTL: time.Hour}), func(c *gin.Context) {
		c.Status(*status)
	})
	return router
}

func postWithKey(router *gin.Engine, company, key string) int {
	req := httptest.NewRequest(http.MethodPost, "/work-orders", nil)
	req.Header.Set("X-Company", company)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func newTestIdempotencyStore(t *testing.T) *cache.InMemoryIdempotencyStore {
	t.Helper()
	store := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	return store
}

func TestIdempotency(t *testing.T) {
	t.Run("replayed key is a conflict", func(t *testing.T) {
		status := http.StatusCreated
		router := newIdempotentRouter(t, newTestIdempotencyStore(t), &status)

		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-a", "key-1"))
		assert.Equal(t, http.StatusConflict, postWithKey(router, "company-a", "key-1"))
		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-a", "key-2"))
	})

	t.Run("keys are scoped per company", func(t *testing.T) {
		status := http.StatusCreated
		router := newIdempotentRouter(t, newTestIdempotencyStore(t), &status)

		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-a", "shared-key"))
		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-b", "shared-key"))
	})

	t.Run("requests without a key are not tracked", func(t *testing.T) {
		status := http.StatusCreated
		router := newIdempotentRouter(t, newTestIdempotencyStore(t), &status)

		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-a", ""))
		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-a", ""))
	})

	t.Run("failed request releases the key", func(t *testing.T) {
		status := http.StatusBadRequest
		router := newIdempotentRouter(t, newTestIdempotencyStore(t), &status)

		assert.Equal(t, http.StatusBadRequest, postWithKey(router, "company-a", "retry-me"))
		status = http.StatusCreated
		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-a", "retry-me"))
		assert.Equal(t, http.StatusConflict, postWithKey(router, "company-a", "retry-me"))
	})

	t.Run("oversized key is rejected", func(t *testing.T) {
		status := http.StatusCreated
		router := newIdempotentRouter(t, newTestIdempotencyStore(t), &status)

		assert.Equal(t, http.StatusBadRequest, postWithKey(router, "company-a", strings.Repeat("k", MaxIdempotencyKeyLength+1)))
	})

	t.Run("store outage fails open", func(t *testing.T) {
		status := http.StatusCreated
		router := newIdempotentRouter(t, brokenIdempotencyStore{}, &status)

		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-a", "key-1"))
		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-a", "key-1"))
	})

	t.Run("nil store disables the check", func(t *testing.T) {
		status := http.StatusCreated
		router := newIdempotentRouter(t, nil, &status)

		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-a", "key-1"))
		assert.Equal(t, http.StatusCreated, postWithKey(router, "company-a", "key-1"))
	})
}
