package emotion

import "sync"

// Cache hands out one Detector per classifier model identifier,
// constructing each at most once for the process lifetime. The build
// function is injected so tests can substitute stub collaborators.
type Cache struct {
	mu        sync.Mutex
	build     func(model string) Classifier
	detectors map[string]*Detector
}

func NewCache(build func(model string) Classifier) *Cache {
	return &Cache{
		build:     build,
		detectors: map[string]*Detector{},
	}
}

// Get returns the memoized Detector for model, constructing it on first
// use. Concurrent callers observe a single construction.
func (c *Cache) Get(model string) *Detector {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d, ok := c.detectors[model]; ok {
		return d
	}
	d := NewDetector(c.build(model))
	c.detectors[model] = d
	return d
}
