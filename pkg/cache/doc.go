// Package cache provides a generic, thread-safe LRU cache with per-entry
// expiry.
//
// The gateway uses it as the in-process store for organization directory
// lookups when no Redis instance is configured:
//
//	c := cache.NewLRU[string, string](10_000, 30*time.Second)
//	c.Put("orgdir:slug:"+id, "acme")
//	slug, ok := c.Get("orgdir:slug:" + id)
//
// Get, Put and Remove are O(1). Expired entries are dropped lazily on access
// and otherwise age out through LRU eviction.
package cache
