// Package cache provides a generic, thread-safe LRU (Least Recently Used)
// cache. The constraint checker uses it to keep compiled regex patterns so
// that a pattern declared in a schema is compiled once, not once per request.
//
//	patterns := cache.NewLRUCache[string, *regexp.Regexp](128)
//	if re, ok := patterns.Get(expr); ok {
//		return re
//	}
//	re := regexp.MustCompile(expr)
//	patterns.Put(expr, re)
//
// Get and Put are O(1). Stats exposes hit/miss counters for diagnostics.
package cache
