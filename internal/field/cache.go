package field

import (
	"sync"

	"github.com/san-kum/trajviz/internal/landscape"
	"github.com/san-kum/trajviz/internal/trajectory"
)

// Key identifies a sample: a sample is a pure function of these inputs.
type Key struct {
	Landscape  string
	Bounds     Bounds
	Resolution int
}

// Cache memoizes samples across render contexts of one process, e.g. when
// the interactive view is rebuilt for another theme.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*Sample
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*Sample)}
}

// Get returns the cached sample for the inputs, evaluating it on a miss.
func (c *Cache) Get(store *trajectory.Store, kind landscape.Kind, resolution int, pad float64) (*Sample, error) {
	if resolution < 2 {
		return New(store, kind, resolution, pad)
	}
	b, err := BoundsOf(store, pad)
	if err != nil {
		return nil, err
	}
	key := Key{Landscape: kind.String(), Bounds: b, Resolution: resolution}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.entries[key]; ok {
		return s, nil
	}
	s := evaluate(kind, b, resolution)
	c.entries[key] = s
	return s, nil
}

// Len reports the number of cached samples.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
