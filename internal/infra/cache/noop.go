package cache

import (
	"context"

	"commerce-core/internal/usecase/queries"
)

// NoopCartCache always misses; used when Redis is not configured.
type NoopCartCache struct{}

func NewNoopCartCache() NoopCartCache { return NoopCartCache{} }

func (NoopCartCache) Get(context.Context, string) (*queries.CartView, error) {
	return nil, queries.ErrCacheMiss
}

func (NoopCartCache) Set(context.Context, string, *queries.CartView) error { return nil }

func (NoopCartCache) Delete(context.Context, ...string) error { return nil }
