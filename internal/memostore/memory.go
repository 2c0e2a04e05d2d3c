// Package memostore holds the in-memory memo store backing the default
// cache.Store. It is generic over the key type so it stays free of import
// cycles with the public cache package.
package memostore

import "github.com/puzpuzpuz/xsync/v3"

// Map is a concurrency-safe memo store. Entries live for the lifetime of
// the Map; there is no eviction or expiry.
type Map[K comparable] struct {
	entries *xsync.MapOf[K, any]
}

// New creates an empty memo store.
func New[K comparable]() *Map[K] {
	return &Map[K]{entries: xsync.NewMapOf[K, any]()}
}

// Lookup returns the stored result for key, if present. Pure read.
func (m *Map[K]) Lookup(key K) (any, bool) {
	return m.entries.Load(key)
}

// Store records the result for key. First write wins: a key that already
// holds a value keeps it, so concurrent first calls racing each other still
// leave exactly one stable memoized value behind.
func (m *Map[K]) Store(key K, result any) {
	m.entries.LoadOrStore(key, result)
}

// Len reports the number of memoized entries.
func (m *Map[K]) Len() int {
	return m.entries.Size()
}
