// Package view holds the shared runtime for page components: fetch
// lifecycles with stale-response discard, debounced triggers, and the
// loading/error/empty/ready display state.
package view

// State is the display phase of a page component. Error and Empty are
// distinct on purpose: a failed fetch offers a retry, a valid response with
// zero items renders an explicit empty state.
type State int

const (
	StateLoading State = iota
	StateError
	StateEmpty
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}
