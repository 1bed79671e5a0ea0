package pipeline

// State is a pipeline state.
type State int

// Pipeline states. Failed can be reached from any state except Done.
const (
	Idle State = iota
	Loading
	Comparing
	Writing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Comparing:
		return "comparing"
	case Writing:
		return "writing"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Terminal tests if no more transitions are possible.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}
