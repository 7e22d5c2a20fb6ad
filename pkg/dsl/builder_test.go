package dsl

import (
	"testing"

	"github.com/aretw0/turing/pkg/codec"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleMachine(t *testing.T) {
	b := New()

	b.State("q0").
		On(machine.Zero).Write(machine.One).Right().Go("q1")

	b.State("q1").
		On(machine.Blank).Left().Halt()

	d := b.Build()
	assert.Equal(t, []string{"q0", "q1"}, d.Names())

	q0, ok := d.Get("q0")
	require.True(t, ok)
	tr, ok := q0.Get(machine.Zero)
	require.True(t, ok)
	assert.Equal(t, machine.Transition{NextState: "q1", Write: machine.One, Move: machine.Right}, tr)

	q1, _ := d.Get("q1")
	tr, ok = q1.Get(machine.Blank)
	require.True(t, ok)
	assert.True(t, tr.Halts())
	assert.Equal(t, machine.Blank, tr.Write, "write defaults to the trigger")
	assert.Equal(t, machine.Left, tr.Move)

	assert.Equal(t, "010100100100111", codec.Encode(d))
}

func TestBuilder_ReopeningStateKeepsPosition(t *testing.T) {
	b := New()
	b.State("q2").Rule(machine.Zero, "q1", machine.Zero, machine.Left)
	b.State("q1").Rule(machine.One, "q2", machine.One, machine.Right)
	b.State("q2").Rule(machine.One, "q1", machine.One, machine.Left)

	d := b.Build()
	assert.Equal(t, []string{"q2", "q1"}, d.Names())

	q2, _ := d.Get("q2")
	assert.Equal(t, 2, q2.Len())
}

func TestBuilder_ChainedStates(t *testing.T) {
	d := New().
		State("q1").Rule(machine.One, "q2", machine.One, machine.Right).
		State("q2").Rule(machine.Zero, "q1", machine.Zero, machine.Left).
		State("q1").Rule(machine.Blank, machine.HaltState, machine.Blank, machine.Left).
		builder.Build()

	assert.Equal(t, []string{"q1", "q2"}, d.Names())
	assert.Equal(t, "0100100100100110010101010111", codec.Encode(d))
	assert.NoError(t, machine.Validate(d))
}

func TestBuilder_EmptyState(t *testing.T) {
	b := New()
	b.State("q0")

	d := b.Build()
	assert.True(t, d.Defines("q0"))
	assert.True(t, codec.Offset(d))
	assert.Equal(t, "1", codec.Encode(d))
}
