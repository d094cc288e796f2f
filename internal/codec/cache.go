package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/marengo/rasterkit/internal/raster"
)

// Cache provides thread-safe caching of decoded buffers to avoid redundant
// decodes of the same file.
//
// Buffers are keyed by the exact path string used to load them. A cached
// buffer is shared between callers and must be treated as read-only;
// operations that mutate in place (dithering) must work on a Clone.
//
// Cached buffers stay in memory until Evict or Clear; long-running
// processes handling many images should clean up periodically.
type Cache struct {
	mu      sync.RWMutex
	buffers map[string]*raster.Buffer
}

// NewCache creates an empty buffer cache, ready for concurrent use.
func NewCache() *Cache {
	return &Cache{
		buffers: make(map[string]*raster.Buffer),
	}
}

// Load returns the buffer for path, decoding and caching it on first use.
func (c *Cache) Load(path string) (*raster.Buffer, error) {
	c.mu.RLock()
	if b, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	b, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.buffers[path] = b
	c.mu.Unlock()

	return b, nil
}

// Clear removes all buffers from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*raster.Buffer)
	c.mu.Unlock()
}

// Evict removes the buffer for path, if cached.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// Info contains metadata about a loaded image file.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Channels is the number of samples per pixel: 1 for grayscale
	// sources, 3 for color.
	Channels int `json:"channels"`

	// Format is the image format guessed from the file extension:
	// "jpeg", "png", "gif", or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the encoded file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Info loads the image at path (through the cache) and returns its
// metadata.
func (c *Cache) Info(path string) (*Info, error) {
	b, err := c.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat %s: %v", ErrIO, path, err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".png":
		format = "png"
	case ".gif":
		format = "gif"
	}

	return &Info{
		Width:         b.Width(),
		Height:        b.Height(),
		Channels:      b.Channels(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
