// Package cache provides a size-bounded LRU cache.
//
//	faces := cache.New[float64, font.Face](8, func(_ float64, f font.Face) { f.Close() })
//	face, err := faces.GetOrCreate(12, newFace)
//
// Entries over the limit are evicted least recently used first, and the
// eviction callback runs for each of them.
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation.
package cache
