package cache

import "github.com/goliatone/go-presenter-cache/internal/memostore"

// Key identifies a memoized result: the canonical operation name plus a
// fingerprint of the ordered argument values. Two calls map to the same Key
// exactly when the operation name matches and every positional argument is
// structurally equal, in the same order. Keys are comparable and immutable
// once built.
type Key struct {
	Operation   string
	Fingerprint string
}

// Store is the per-proxy memo store. Implementations must be safe for
// concurrent use; Lookup is a pure read and Store is first-write-wins, so a
// key that holds a value keeps that value for the life of the store.
type Store interface {
	// Lookup returns the stored result for key, if present.
	Lookup(key Key) (any, bool)

	// Store records the result for key. Idempotent: once a key is written
	// its value never changes.
	Store(key Key, result any)
}

// KeyBuilder canonicalizes an operation name plus its ordered arguments
// into a Key. Argument values are compared by structure, not identity, so
// distinct-but-equal instances must collide to the same key.
type KeyBuilder interface {
	BuildKey(operation string, args ...any) Key
}

// NewStore returns the default in-memory Store implementation.
func NewStore() Store {
	return memostore.New[Key]()
}
