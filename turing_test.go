package turing_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresPathOrLoader(t *testing.T) {
	_, err := turing.New("")
	assert.Error(t, err)
}

func TestEncoder_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.yaml")
	content := "q0:\n  \"0\": {nextState: q1, write: \"1\", move: right}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	enc, err := turing.New(path)
	require.NoError(t, err)

	bits, err := enc.Encode("01")
	require.NoError(t, err)
	assert.Equal(t, "01010010010011101", bits)
}

func TestEncoder_ForcedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine")
	require.NoError(t, os.WriteFile(path, []byte("q1: {}\n"), 0644))

	enc, err := turing.New(path, turing.WithFormat(file.FormatYAML))
	require.NoError(t, err)

	d, err := enc.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, d.Names())
}

func TestEncoder_Validation(t *testing.T) {
	d := machine.New().
		Set("q0", machine.NewTable().
			Set(machine.Zero, machine.Transition{NextState: "q7", Write: machine.One, Move: machine.Right}))

	lenient, err := turing.New("", turing.WithDescription(d))
	require.NoError(t, err)
	bits, err := lenient.Encode("")
	require.NoError(t, err)
	assert.Equal(t, "01010000000010010011"+"1", bits)

	strict, err := turing.New("", turing.WithDescription(d), turing.WithValidation())
	require.NoError(t, err)
	_, err = strict.Encode("")
	assert.ErrorIs(t, err, machine.ErrMalformedDescription)
}

func TestEncoder_LoaderError(t *testing.T) {
	boom := errors.New("boom")
	enc, err := turing.New("", turing.WithLoader(ports.DescriptionFunc(func() (*machine.Description, error) {
		return nil, boom
	})))
	require.NoError(t, err)

	_, err = enc.Encode("")
	assert.ErrorIs(t, err, boom)

	_, err = enc.Records()
	assert.ErrorIs(t, err, boom)
}
