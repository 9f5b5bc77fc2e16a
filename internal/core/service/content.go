package service

import (
	"html"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/microcosm-cc/bluemonday"

	"github.com/atelier-interiors/studio-cms/internal/metrics"
)

// CacheConfig sizes the public list caches. A non-positive Size disables caching.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

var textPolicy = bluemonday.StrictPolicy()

// cleanText strips markup from editor input and trims it. The strict policy
// escapes entities, which are decoded again since output is JSON, not HTML.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// listCache memoises public list queries of one collection. Every mutation of
// that collection purges it.
type listCache[T any] struct {
	collection string
	lru        *expirable.LRU[string, []T]
}

func newListCache[T any](collection string, cfg CacheConfig) *listCache[T] {
	c := &listCache[T]{collection: collection}
	if cfg.Size > 0 {
		c.lru = expirable.NewLRU[string, []T](cfg.Size, nil, cfg.TTL)
	}
	return c
}

func (c *listCache[T]) get(key string) ([]T, bool) {
	if c.lru == nil {
		return nil, false
	}
	v, ok := c.lru.Get(key)
	if !ok {
		metrics.ContentCacheTotal.WithLabelValues(c.collection, "miss").Inc()
		return nil, false
	}
	metrics.ContentCacheTotal.WithLabelValues(c.collection, "hit").Inc()
	return slices.Clone(v), true
}

func (c *listCache[T]) put(key string, v []T) {
	if c.lru == nil {
		return
	}
	c.lru.Add(key, slices.Clone(v))
}

func (c *listCache[T]) purge() {
	if c.lru != nil {
		c.lru.Purge()
	}
}

func mutated(collection, op string) {
	metrics.ContentMutationsTotal.WithLabelValues(collection, op).Inc()
}

func checkLength(field, value string, max int) error {
	if value == "" {
		return requiredErr(field)
	}
	if len([]rune(value)) > max {
		return lengthErr(field, max)
	}
	return nil
}
