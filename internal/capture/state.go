package capture

// State is the lifecycle phase of a capture session.
type State int

const (
	Launching State = iota
	Editing
	Committing
	Discarding
	Terminated
)

func (s State) String() string {
	switch s {
	case Launching:
		return "launching"
	case Editing:
		return "editing"
	case Committing:
		return "committing"
	case Discarding:
		return "discarding"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
