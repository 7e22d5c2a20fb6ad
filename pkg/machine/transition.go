package machine

// Transition is the effect of reading a trigger symbol in a given state.
type Transition struct {
	NextState string `json:"nextState" yaml:"nextState"`
	Write     Symbol `json:"write" yaml:"write"`
	Move      Move   `json:"move" yaml:"move"`
}

// Halts reports whether the transition leads to the halt sentinel.
func (t Transition) Halts() bool {
	return t.NextState == HaltState
}
