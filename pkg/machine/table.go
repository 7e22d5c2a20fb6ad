package machine

import (
	"bytes"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Table holds the transitions of a single state, keyed by trigger symbol.
// Iteration follows the order in which triggers were first set.
// The zero value is an empty table ready to use.
type Table struct {
	rules *orderedmap.OrderedMap[string, Transition]
}

// NewTable creates an empty transition table.
func NewTable() *Table {
	return &Table{rules: orderedmap.New[string, Transition]()}
}

func (t *Table) init() {
	if t.rules == nil {
		t.rules = orderedmap.New[string, Transition]()
	}
}

// Set defines the transition fired by trigger.
// Redefining an existing trigger replaces its transition but keeps its position.
func (t *Table) Set(trigger Symbol, tr Transition) *Table {
	t.init()
	t.rules.Set(string(trigger), tr)
	return t
}

// Get returns the transition fired by trigger.
func (t *Table) Get(trigger Symbol) (Transition, bool) {
	if t == nil || t.rules == nil {
		return Transition{}, false
	}
	return t.rules.Get(string(trigger))
}

// Len returns the number of triggers in the table.
func (t *Table) Len() int {
	if t == nil || t.rules == nil {
		return 0
	}
	return t.rules.Len()
}

// All iterates the table in insertion order.
func (t *Table) All() iter.Seq2[Symbol, Transition] {
	return func(yield func(Symbol, Transition) bool) {
		if t == nil || t.rules == nil {
			return
		}
		for pair := t.rules.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(Symbol(pair.Key), pair.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the table as a JSON object, triggers in insertion order.
func (t *Table) MarshalJSON() ([]byte, error) {
	t.init()
	return t.rules.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the order of its keys.
func (t *Table) UnmarshalJSON(data []byte) error {
	t.rules = orderedmap.New[string, Transition]()
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	return t.rules.UnmarshalJSON(data)
}

// MarshalYAML encodes the table as a YAML mapping, triggers in insertion order.
func (t *Table) MarshalYAML() (any, error) {
	t.init()
	return t.rules.MarshalYAML()
}

// UnmarshalYAML decodes a YAML mapping, keeping the order of its keys.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	t.rules = orderedmap.New[string, Transition]()
	return t.rules.UnmarshalYAML(node)
}
