package texture

import (
	"image"
	"sync"
)

// Resolver resolves a texture name to a decoded RGBA image.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Map is a fixed in-memory Resolver keyed by exact name.
type Map map[string]*image.NRGBA

// Resolve returns the image stored under texName, or nil.
func (m Map) Resolve(texName string) *image.NRGBA {
	return m[texName]
}

// Cache is a concurrency-safe texture cache.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA // nil value: load attempted and failed
	index *Index
	onErr func(path string, err error)
}

// NewCache creates a new texture cache backed by the given index. onErr, if
// not nil, is told about files that fail to decode (once per file).
func NewCache(index *Index, onErr func(path string, err error)) *Cache {
	return &Cache{
		items: make(map[string]*image.NRGBA),
		index: index,
		onErr: onErr,
	}
}

// Resolve loads and caches a texture by name. Returns nil if not found.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	img, exists := c.items[path]
	c.mu.RUnlock()
	if exists {
		return img
	}

	// Slow path: load from disk
	img, err := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, exists := c.items[path]; exists {
		return cached
	}
	c.items[path] = img
	if err != nil && c.onErr != nil {
		c.onErr(path, err)
	}
	return img
}
