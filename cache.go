package glot

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// DictionaryCache hands out token dictionaries keyed by configuration
// identity, building each at most once. Builds are pure functions of the
// configuration, so concurrent requesters for a not-yet-built dictionary
// coalesce onto a single build and all receive the same value.
type DictionaryCache struct {
	mu     sync.RWMutex
	byName map[string]*TokenDictionary
	group  singleflight.Group
}

func NewDictionaryCache() *DictionaryCache {
	return &DictionaryCache{byName: make(map[string]*TokenDictionary)}
}

// Get returns the dictionary for l, building it on first use. Identity
// is l.Name: configurations sharing a name share a dictionary, which is
// why distinct configurations must not share names.
func (c *DictionaryCache) Get(l *LanguageConfiguration) *TokenDictionary {
	c.mu.RLock()
	d := c.byName[l.Name]
	c.mu.RUnlock()
	if d != nil {
		return d
	}
	v, _, _ := c.group.Do(l.Name, func() (interface{}, error) {
		c.mu.RLock()
		d := c.byName[l.Name]
		c.mu.RUnlock()
		if d != nil {
			return d, nil
		}
		d = NewTokenDictionary(l)
		c.mu.Lock()
		c.byName[l.Name] = d
		c.mu.Unlock()
		return d, nil
	})
	return v.(*TokenDictionary)
}

// Evict drops the dictionary for name, for callers that replace a
// configuration wholesale (a new revision gets a new name, but tooling
// that hot-reloads language files reuses names).
func (c *DictionaryCache) Evict(name string) {
	c.mu.Lock()
	delete(c.byName, name)
	c.mu.Unlock()
}
