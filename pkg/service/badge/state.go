package badge

// State is a step of one badge request.
type State int

const (
	StateIdle State = iota
	StateFetchingMetadata
	StateRendering
	StateResponded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetchingMetadata:
		return "fetching_metadata"
	case StateRendering:
		return "rendering"
	case StateResponded:
		return "responded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// next reports whether moving from s to to is allowed.
func (s State) next(to State) bool {
	switch s {
	case StateIdle:
		return to == StateFetchingMetadata
	case StateFetchingMetadata:
		return to == StateRendering || to == StateFailed
	case StateRendering:
		return to == StateResponded || to == StateFailed
	default:
		return false
	}
}
