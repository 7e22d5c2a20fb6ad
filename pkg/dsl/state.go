package dsl

import "github.com/aretw0/turing/pkg/machine"

// StateBuilder provides a fluent API for declaring the transitions of a state.
type StateBuilder struct {
	name    string
	table   *machine.Table
	builder *Builder
}

// Name returns the state name.
func (s *StateBuilder) Name() string {
	return s.name
}

// On starts a transition fired when trigger is under the head.
// The transition is recorded once Go or Halt is called.
func (s *StateBuilder) On(trigger machine.Symbol) *TransitionBuilder {
	return &TransitionBuilder{state: s, trigger: trigger, move: machine.Right}
}

// Rule records a complete transition in one call.
func (s *StateBuilder) Rule(trigger machine.Symbol, next string, write machine.Symbol, move machine.Move) *StateBuilder {
	s.table.Set(trigger, machine.Transition{NextState: next, Write: write, Move: move})
	return s
}

// State switches to another state of the same machine.
func (s *StateBuilder) State(name string) *StateBuilder {
	return s.builder.State(name)
}

// TransitionBuilder collects the effect of a single transition.
type TransitionBuilder struct {
	state   *StateBuilder
	trigger machine.Symbol
	write   machine.Symbol
	move    machine.Move
	written bool
}

// Write sets the symbol written to the tape. Defaults to the trigger itself.
func (t *TransitionBuilder) Write(symbol machine.Symbol) *TransitionBuilder {
	t.write = symbol
	t.written = true
	return t
}

// Left moves the head left after writing.
func (t *TransitionBuilder) Left() *TransitionBuilder {
	t.move = machine.Left
	return t
}

// Right moves the head right after writing. This is the default.
func (t *TransitionBuilder) Right() *TransitionBuilder {
	t.move = machine.Right
	return t
}

// Go records the transition with next as the following state.
func (t *TransitionBuilder) Go(next string) *StateBuilder {
	write := t.write
	if !t.written {
		write = t.trigger
	}
	return t.state.Rule(t.trigger, next, write, t.move)
}

// Halt records the transition as leading to the halt state.
func (t *TransitionBuilder) Halt() *StateBuilder {
	return t.Go(machine.HaltState)
}
