// Package proxy implements a memoizing decorator around an arbitrary
// delegate object.
//
// # Overview
//
// A Proxy behaves like the object it wraps: callers invoke operations by
// name and the proxy either runs an explicitly defined handler or forwards
// to the delegate. On top of that transparency it adds one feature, the
// automatic memoization of "read" results.
//
// Every call runs through the same decision protocol:
//
//  1. Resolve the operation: a handler registered with Define shadows a
//     delegate method of the same name; an unresolvable name yields
//     NoSuchOperationError.
//  2. Classify the call. Names ending in the assignment marker "=" and
//     calls carrying a callback always execute and never touch the store.
//  3. Cacheable calls build a key from the operation name and argument
//     values, return the stored result on a hit, and execute-then-store on
//     a miss.
//
// There is exactly one caching policy: handlers and delegated calls are
// memoized the same way, so presentation logic defined on the proxy
// benefits from the cache just like forwarded calls do.
//
// # Cached vs Pass-through Calls
//
// Cached:
//   - any operation whose name lacks the assignment marker, invoked without
//     a callback, whether it resolves to a handler or a delegate method
//
// Pass-through:
//   - operations named "<name>=" (resolved to Set<Name> delegate methods)
//   - any call made through InvokeWith, regardless of name or arguments
//
// Only successful results are memoized. A failing call is re-attempted on
// every subsequent invocation with the same key, and may then succeed and
// be cached. Errors from the delegate propagate unchanged.
//
// # Dispatch Table
//
// The delegate's method set is reflected once, at construction. Operation
// names are normalized to snake_case before resolution and key
// construction, so "FullName", "fullName" and "full_name" are the same
// operation. Per-call work is a map lookup plus the usual reflect.Call.
//
// # Concurrency
//
// The core protocol is synchronous and adds no scheduling of its own. The
// default store tolerates concurrent use: lookup/compute/store is not
// atomic, so concurrent first calls may execute the underlying operation
// more than once, but the store is first-write-wins and every caller
// observes one stable memoized value.
package proxy
