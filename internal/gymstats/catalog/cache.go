package catalog

import (
	"encoding/json"
	"sync"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	listCacheKey    = "catalog::list"
	listCacheExpire = 60 * 60 // seconds
)

// ListCache keeps the serialized catalog list. Every catalog write invalidates it.
// Invalidate bumps the generation, so a list read before a write is never stored
// after that write.
type ListCache struct {
	cache *freecache.Cache

	mu         sync.Mutex
	generation uint64
}

func NewListCache(sizeMB int) *ListCache {
	megabyte := 1024 * 1024
	return &ListCache{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (c *ListCache) Get() ([]Exercise, bool) {
	b, err := c.cache.Get([]byte(listCacheKey))
	if err != nil {
		return nil, false
	}

	var exercises []Exercise
	if err := json.Unmarshal(b, &exercises); err != nil {
		log.Errorf("catalog cache, unmarshal list: %s", err)
		c.Invalidate()
		return nil, false
	}
	return exercises, true
}

// Generation is taken before loading the list that is later passed to Set.
func (c *ListCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Set stores the list loaded at generation. It reports false, storing nothing,
// when the cache was invalidated since.
func (c *ListCache) Set(exercises []Exercise, generation uint64) bool {
	b, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("catalog cache, marshal list: %s", err)
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}
	if err := c.cache.Set([]byte(listCacheKey), b, listCacheExpire); err != nil {
		log.Errorf("catalog cache, set list: %s", err)
		return false
	}
	return true
}

func (c *ListCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.cache.Del([]byte(listCacheKey))
}
