package dsl

import "github.com/aretw0/turing/pkg/machine"

// Builder manages the machine construction.
type Builder struct {
	desc   *machine.Description
	states map[string]*StateBuilder
}

// New creates a new machine builder.
func New() *Builder {
	return &Builder{
		desc:   machine.New(),
		states: make(map[string]*StateBuilder),
	}
}

// State declares a state in the machine.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{
		name:    name,
		table:   machine.NewTable(),
		builder: b,
	}
	b.states[name] = sb
	b.desc.Set(name, sb.table)
	return sb
}

// Build returns the description assembled so far.
// The builder keeps ownership: further declarations are visible in the result.
func (b *Builder) Build() *machine.Description {
	return b.desc
}
