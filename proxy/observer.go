package proxy

// Event identifies a single dispatch outcome.
type Event int

const (
	// EventMiss fires when a cacheable call finds no stored result.
	EventMiss Event = iota

	// EventHit fires when a cacheable call returns a stored result.
	EventHit

	// EventStore fires after a successful result is written to the store.
	EventStore

	// EventBypassMutator fires when an assignment operation executes.
	EventBypassMutator

	// EventBypassCallback fires when a callback-carrying call executes.
	EventBypassCallback

	// EventNotFound fires when no executor resolves for the operation.
	EventNotFound
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventMiss:
		return "miss"
	case EventHit:
		return "hit"
	case EventStore:
		return "store"
	case EventBypassMutator:
		return "bypass_mutator"
	case EventBypassCallback:
		return "bypass_callback"
	case EventNotFound:
		return "not_found"
	}
	return "unknown"
}

// EventData describes one dispatch outcome.
type EventData struct {
	Event     Event
	ProxyID   string
	Operation string
}

// Observer receives dispatch events. Emission happens inline on the call
// path, so implementations must be fast and must not block.
type Observer interface {
	On(EventData)
}
