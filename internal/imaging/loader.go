package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// CaptureCache provides thread-safe caching of decoded screenshots.
//
// A single capture is read repeatedly during a session: once per extraction
// batch, again for every inspection crop while coordinates are being tuned.
// The cache keeps decoded image.Image values keyed by file path so repeated
// reads skip disk I/O and decoding.
//
// Cached captures remain in memory until Evict or Clear is called. Sessions
// that work through many screenshots should evict captures they are done
// with.
type CaptureCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCaptureCache creates an empty capture cache ready for concurrent use.
func NewCaptureCache() *CaptureCache {
	return &CaptureCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the capture at path, decoding it from disk on first use.
//
// Supported formats are PNG, JPEG, and GIF. The capture is cached under the
// exact path string provided; relative and absolute paths to the same file
// are distinct entries.
func (c *CaptureCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := LoadCapture(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes a single capture from the cache.
func (c *CaptureCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes all cached captures, freeing the associated memory.
func (c *CaptureCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// LoadCapture reads and decodes a screenshot without caching.
func LoadCapture(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode capture %s: %w", path, err)
	}
	return img, nil
}
