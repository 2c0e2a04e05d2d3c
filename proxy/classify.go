package proxy

import "strings"

// AssignmentMarker is the suffix that marks an operation name as a mutator.
const AssignmentMarker = "="

// Verdict is the eligibility decision for a single call.
type Verdict int

const (
	// Cacheable calls are memoized per (operation, arguments) key.
	Cacheable Verdict = iota

	// BypassMutator calls carry the assignment marker and always execute.
	BypassMutator

	// BypassCallback calls carry a callback argument and always execute.
	BypassCallback
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case Cacheable:
		return "cacheable"
	case BypassMutator:
		return "bypass_mutator"
	case BypassCallback:
		return "bypass_callback"
	}
	return "unknown"
}

// Classify decides how a single call is treated. The mutator check is
// purely syntactic on the operation name: mutability is a naming convention
// here, not a type property. A callback argument disqualifies the call from
// memoization even when a callback-less call with the same name and
// arguments was already cached.
func Classify(operation string, hasCallback bool) Verdict {
	switch {
	case strings.HasSuffix(operation, AssignmentMarker):
		return BypassMutator
	case hasCallback:
		return BypassCallback
	default:
		return Cacheable
	}
}
