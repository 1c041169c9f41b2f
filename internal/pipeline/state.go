package pipeline

// State is a step of the extract/forecast state machine
type State int

const (
	StateIdle State = iota
	StateExtractingPrimary
	StateForecastingPrimary
	StateFallingBack
	StateExtractingAnnual
	StateForecastingAnnual
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:               "idle",
	StateExtractingPrimary:  "extracting_primary",
	StateForecastingPrimary: "forecasting_primary",
	StateFallingBack:        "falling_back",
	StateExtractingAnnual:   "extracting_annual",
	StateForecastingAnnual:  "forecasting_annual",
	StateDone:               "done",
	StateFailed:             "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the run is over
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
