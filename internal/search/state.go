package search

// State is the lifecycle phase of a Coordinator.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateAggregating
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateAggregating:
		return "aggregating"
	case StateDone:
		return "done"
	}
	return "unknown"
}
