package common

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/metrics"

	"golang.org/x/sync/singleflight"
)

// ReadThroughCache serves JSON-encoded payloads from a backend, loading and
// storing them on a miss. Concurrent misses for one key share a single load.
type ReadThroughCache struct {
	backend CacheInterface
	group   singleflight.Group
	metrics *metrics.MetricsRegistry
}

// NewReadThroughCache accepts a nil registry.
func NewReadThroughCache(backend CacheInterface, metricsReg *metrics.MetricsRegistry) *ReadThroughCache {
	return &ReadThroughCache{backend: backend, metrics: metricsReg}
}

// Fetch decodes the cached value for key into dest, calling loader on a miss.
// Loader errors are returned as-is and never cached. The loader sees ctx
// without its cancellation.
func (c *ReadThroughCache) Fetch(ctx context.Context, key string, ttl time.Duration, dest any, loader func(context.Context) (any, error)) error {
	if data, found := c.backend.Get(key); found {
		if err := json.Unmarshal(data, dest); err == nil {
			c.recordHit(key)
			return nil
		}
		logging.Warn("Dropping undecodable cache entry", "key", key)
		c.backend.Delete(key)
	}
	c.recordMiss(key)

	loadCtx := context.WithoutCancel(ctx)
	data, err, _ := c.group.Do(key, func() (interface{}, error) {
		val, err := loader(loadCtx)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("failed to encode cache value for %s: %w", key, err)
		}
		c.backend.Set(key, encoded, ttl)
		return encoded, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(data.([]byte), dest)
}

// Invalidate drops the given keys.
func (c *ReadThroughCache) Invalidate(keys ...string) {
	for _, key := range keys {
		c.backend.Delete(key)
		if c.metrics != nil {
			c.metrics.CacheInvalidationsTotal.WithLabelValues(keyPattern(key)).Inc()
		}
	}
}

func (c *ReadThroughCache) recordHit(key string) {
	if c.metrics != nil {
		c.metrics.CacheHitsTotal.WithLabelValues(keyPattern(key)).Inc()
	}
}

func (c *ReadThroughCache) recordMiss(key string) {
	if c.metrics != nil {
		c.metrics.CacheMissesTotal.WithLabelValues(keyPattern(key)).Inc()
	}
}

// keyPattern keeps label cardinality bounded: "representative:detail:slug" -> "representative".
func keyPattern(key string) string {
	if i := strings.Index(key, ":"); i > 0 {
		return key[:i]
	}
	return key
}
