package memory

import (
	"context"
	"time"

	"github.com/aretw0/fundflow/pkg/ports"
	"github.com/patrickmn/go-cache"
)

// DefaultTTL bounds how long an advisor reply is reused.
const DefaultTTL = 10 * time.Minute

var _ ports.ResponseCache = (*Cache)(nil)

// Cache is an in-process ports.ResponseCache.
type Cache struct {
	store *cache.Cache
}

// NewCache creates a cache whose entries expire after ttl.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: cache.New(ttl, 2*ttl)}
}

func (c *Cache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	return s, ok, nil
}

func (c *Cache) Set(_ context.Context, key, value string) error {
	c.store.Set(key, value, cache.DefaultExpiration)
	return nil
}

// Len returns the number of stored replies, expired ones included until purged.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}
