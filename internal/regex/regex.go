// Package regex provides a concurrency-safe cache of compiled patterns so
// the same user-supplied expression is compiled once per run.
package regex

import (
	"fmt"
	"sync"

	"github.com/dlclark/regexp2"
)

type cacheKey struct {
	pattern string
	options regexp2.RegexOptions
}

// Cache memoizes compiled regexp2 patterns keyed by pattern and options.
type Cache struct {
	mu       sync.RWMutex
	patterns map[cacheKey]*regexp2.Regexp
}

// NewCache returns an empty pattern cache.
func NewCache() *Cache {
	return &Cache{
		patterns: make(map[cacheKey]*regexp2.Regexp),
	}
}

// Compile returns the compiled pattern, reusing a previous compilation of
// the same pattern and options when available.
func (c *Cache) Compile(pattern string, options regexp2.RegexOptions) (*regexp2.Regexp, error) {
	key := cacheKey{pattern: pattern, options: options}

	c.mu.RLock()
	if compiled, ok := c.patterns[key]; ok {
		c.mu.RUnlock()
		return compiled, nil
	}
	c.mu.RUnlock()

	compiled, err := regexp2.Compile(pattern, options)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}

	c.mu.Lock()
	c.patterns[key] = compiled
	c.mu.Unlock()

	return compiled, nil
}
