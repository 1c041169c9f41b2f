// Package cache memoizes fuzzy-search rankings. The catalogs never change
// while the process runs, so a ranking computed once stays valid.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Cache stores ranked item indexes per search
type Cache interface {
	Get(key string) ([]int, bool)
	Set(key string, ranks []int)
	Clear()
}

// Key derives a cache key from the item list name and the typed query
func Key(list, query string) string {
	hash := sha256.Sum256([]byte(list + "\x00" + query))
	return "dcntforecast:v1:" + hex.EncodeToString(hash[:])
}
