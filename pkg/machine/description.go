package machine

import (
	"bytes"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Description is a complete machine: state names mapped to their transition tables.
//
// States iterate in the order they were first set. A state may be present with a
// nil table, which is how a JSON or YAML null entry is represented; such a state
// has no transitions and does not count as defined for Defines.
type Description struct {
	states *orderedmap.OrderedMap[string, *Table]
}

// New creates an empty description.
func New() *Description {
	return &Description{states: orderedmap.New[string, *Table]()}
}

func (d *Description) init() {
	if d.states == nil {
		d.states = orderedmap.New[string, *Table]()
	}
}

// Set stores the transition table of state name.
// Redefining a state replaces its table but keeps its position.
func (d *Description) Set(name string, t *Table) *Description {
	d.init()
	d.states.Set(name, t)
	return d
}

// Get returns the table of state name. The table may be nil even when ok is true.
func (d *Description) Get(name string) (t *Table, ok bool) {
	if d == nil || d.states == nil {
		return nil, false
	}
	return d.states.Get(name)
}

// Defines reports whether name is present with a non-nil table.
func (d *Description) Defines(name string) bool {
	t, ok := d.Get(name)
	return ok && t != nil
}

// Len returns the number of states, nil entries included.
func (d *Description) Len() int {
	if d == nil || d.states == nil {
		return 0
	}
	return d.states.Len()
}

// Names returns the state names in insertion order.
func (d *Description) Names() []string {
	names := make([]string, 0, d.Len())
	for name := range d.All() {
		names = append(names, name)
	}
	return names
}

// All iterates the states in insertion order.
func (d *Description) All() iter.Seq2[string, *Table] {
	return func(yield func(string, *Table) bool) {
		if d == nil || d.states == nil {
			return
		}
		for pair := d.states.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the description as a JSON object, states in insertion order.
func (d *Description) MarshalJSON() ([]byte, error) {
	d.init()
	return d.states.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the order of its keys.
func (d *Description) UnmarshalJSON(data []byte) error {
	d.states = orderedmap.New[string, *Table]()
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	return d.states.UnmarshalJSON(data)
}

// MarshalYAML encodes the description as a YAML mapping, states in insertion order.
func (d *Description) MarshalYAML() (any, error) {
	d.init()
	return d.states.MarshalYAML()
}

// UnmarshalYAML decodes a YAML mapping, keeping the order of its keys.
func (d *Description) UnmarshalYAML(node *yaml.Node) error {
	d.states = orderedmap.New[string, *Table]()
	return d.states.UnmarshalYAML(node)
}
