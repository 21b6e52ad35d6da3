package estree

import "sync"

// CachedRender pairs printed output with the rewrite stats of the run
// that produced it, so a cache hit can still report what the original
// traversal did.
type CachedRender struct {
	Output string
	Stats  RewriteStats
}

// RenderCache stores rendered results keyed by source text. Thread-safe
// with RWMutex and FIFO eviction; used by hosts that re-process the
// same input repeatedly (e.g. watch mode).
type RenderCache struct {
	mu      sync.RWMutex
	entries map[string]CachedRender
	order   []string // FIFO insertion order
	maxSize int
}

// NewRenderCache creates a cache with the given size limit.
func NewRenderCache(maxSize int) *RenderCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &RenderCache{
		entries: make(map[string]CachedRender),
		maxSize: maxSize,
	}
}

// Fetch retrieves the cached render or builds and stores it using fn.
// The second return value reports whether the result came from the
// cache.
func (c *RenderCache) Fetch(key string, fn func() (CachedRender, error)) (CachedRender, bool, error) {
	c.mu.RLock()
	if v, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return v, true, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check after acquiring write lock
	if v, ok := c.entries[key]; ok {
		return v, true, nil
	}

	val, err := fn()
	if err != nil {
		return CachedRender{}, false, err
	}

	// FIFO eviction: remove oldest entry if at capacity
	if len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = val
	c.order = append(c.order, key)
	return val, false, nil
}

// Len reports the number of cached renders.
func (c *RenderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
