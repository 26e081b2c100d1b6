package palette

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of palettes kept by NewCached when size <= 0.
const DefaultCacheSize = 256

// Cached memoizes another Generator. It is safe for concurrent use.
type Cached struct {
	next  Generator
	cache *lru.Cache[string, []string]
}

// NewCached wraps next with an LRU of the given size.
func NewCached(next Generator, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}

	return &Cached{next: next, cache: cache}, nil
}

// Generate returns a copy of the cached palette or delegates and stores the
// result. Errors are not cached.
func (c *Cached) Generate(count int, seed string) ([]string, error) {
	key := strconv.Itoa(count) + "\x00" + seed
	if colors, ok := c.cache.Get(key); ok {
		return append([]string(nil), colors...), nil
	}

	colors, err := c.next.Generate(count, seed)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, append([]string(nil), colors...))

	return colors, nil
}

// Len returns the number of cached palettes.
func (c *Cached) Len() int { return c.cache.Len() }
