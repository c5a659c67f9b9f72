package internal

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 16

// TextureCache keeps the most recently used textures and destroys the rest
// as they are evicted.
type TextureCache struct {
	textures *lru.Cache[string, *sdl.Texture]
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	// lru.NewWithEvict only fails for a non-positive size.
	cache, _ := lru.NewWithEvict(maxSize, func(_ string, texture *sdl.Texture) {
		if texture != nil {
			texture.Destroy()
		}
	})
	return &TextureCache{textures: cache}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	texture, _ := c.textures.Get(key)
	return texture
}

// Set stores texture under key. Replacing an existing key destroys the old
// texture.
func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, ok := c.textures.Peek(key); ok && old != texture {
		c.textures.Remove(key)
	}
	c.textures.Add(key, texture)
}

// Destroy releases every cached texture.
func (c *TextureCache) Destroy() {
	c.textures.Purge()
}
