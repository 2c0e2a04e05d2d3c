// Package cache provides the memo store contract and key construction for
// the presenter proxy.
//
// # Overview
//
// Two contracts live here:
//
//   - Store: a per-proxy mapping from a Key to a previously computed result
//   - KeyBuilder: builds stable Keys from an operation name and its arguments
//
// A Key is the composite identity (operation name, ordered argument values).
// The default KeyBuilder canonicalizes arguments by value, so two calls with
// structurally equal but distinct argument instances land on the same entry.
//
// # Key Construction Strategy
//
// The default builder walks arguments with reflection:
//
//   - Basic types: string representation tagged with the concrete type,
//     so int(1) and "1" never share an entry
//   - Pointers: dereferenced, so *T and T with equal contents collide
//   - Slices/arrays: recursive fingerprint of elements
//   - Maps: sorted entries for deterministic output
//   - Structs: exported fields in declaration order
//   - Functions/channels: pointer identity, stable within a process
//   - Anything else: deterministic msgpack encoding
//
// Every segment is length-prefixed before joining, so separator bytes
// appearing inside argument values cannot forge segment boundaries.
// Argument segments longer than MaxSegmentLength are compacted to an
// xxhash64 digest so keys stay bounded regardless of payload size.
//
// # Function Arguments
//
// Function pointers are stable only within a single process lifetime, and
// closures capturing different variables fingerprint differently. Calls that
// carry a callback never reach the store at all; this only matters for plain
// function values passed as data.
//
// # Store Semantics
//
// The default Store (see NewStore) holds entries for exactly as long as the
// owning proxy lives. There is no eviction, expiry, or size bound: once a
// key is written its value never changes. Storing is first-write-wins, which
// is what makes memoized results stable even when concurrent first calls
// race each other.
package cache
