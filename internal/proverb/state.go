package proverb

// PipelineID names one of the two independent pipelines.
type PipelineID string

const (
	PipelineSearch PipelineID = "search"
	PipelineFilter PipelineID = "filter"
)

// Action is what a retry affordance re-invokes.
type Action string

const (
	ActionNone   Action = ""
	ActionSearch Action = "search"
	ActionFilter Action = "filter"
	ActionVoice  Action = "voice"
)

// Phase is the position of a pipeline in its state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseEmpty
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseEmpty:
		return "empty"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the transient UI state of one pipeline.
// Only the fields belonging to Phase are meaningful.
type State struct {
	Phase  Phase
	Echo   string         // Query echoed while loading
	Search *SearchOutcome // PhaseSuccess on the search pipeline
	Filter *FilterOutcome // PhaseSuccess on the filter pipeline
	Err    *Error         // PhaseFailed
	Retry  Action         // PhaseEmpty, PhaseFailed
}

// Idle is the state before any user action.
func Idle() State {
	return State{Phase: PhaseIdle}
}

// Loading is published synchronously before a request is issued.
func Loading(echo string) State {
	return State{Phase: PhaseLoading, Echo: echo}
}

// Searched is the terminal state of a successful search.
func Searched(out SearchOutcome) State {
	return State{Phase: PhaseSuccess, Search: &out}
}

// Filtered is the terminal state of a filter call. No rows yields PhaseEmpty
// with a retry that re-runs the filter.
func Filtered(out FilterOutcome) State {
	if out.Empty() {
		return State{Phase: PhaseEmpty, Retry: ActionFilter}
	}
	return State{Phase: PhaseSuccess, Filter: &out}
}

// Failed is the terminal state of any error. Retry must name the action that
// re-attempts the same operation.
func Failed(err *Error, retry Action) State {
	return State{Phase: PhaseFailed, Err: err, Retry: retry}
}

// Message returns the human-readable failure message, or "" if not failed.
func (s State) Message() string {
	if s.Phase != PhaseFailed || s.Err == nil {
		return ""
	}
	return s.Err.Error()
}
