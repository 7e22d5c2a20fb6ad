package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const incrementer = `{
  "q0": {
    "0": {"nextState": "q0", "write": "0", "move": "right"},
    "1": {"nextState": "q0", "write": "1", "move": "right"},
    " ": {"nextState": "q1", "write": " ", "move": "left"}
  },
  "q1": {
    "1": {"nextState": "q1", "write": "0", "move": "left"},
    "0": {"nextState": "qdone", "write": "1", "move": "left"},
    " ": {"nextState": "qdone", "write": "1", "move": "left"}
  }
}`

const incrementerBits = "010101010011010010100100110100010010001011001001001010111"

func writeMachine(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func streams(in string) (Streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Streams{In: strings.NewReader(in), Out: &out, Err: &errOut}, &out, &errOut
}

func TestEncode_File(t *testing.T) {
	s, out, _ := streams("")
	opts := EncodeOptions{
		Options: Options{MachinePath: writeMachine(t, "inc.json", incrementer)},
		Tape:    "1011",
	}

	require.NoError(t, Encode(opts, s))
	assert.Equal(t, incrementerBits+"1011", out.String(), "no newline when not writing to a terminal")
}

func TestEncode_Stdin(t *testing.T) {
	s, out, _ := streams(incrementer)
	opts := EncodeOptions{Options: Options{MachinePath: file.StdinPath}}

	require.NoError(t, Encode(opts, s))
	assert.Equal(t, incrementerBits, out.String())
}

func TestEncode_StdinYAMLWithExplain(t *testing.T) {
	yamlMachine := "q0:\n  \"0\": {nextState: q1, write: \"1\", move: right}\n"
	s, out, _ := streams(yamlMachine)
	opts := EncodeOptions{
		Options: Options{MachinePath: file.StdinPath, Format: "yaml"},
		Tape:    "01",
		Explain: true,
	}

	require.NoError(t, Encode(opts, s))
	got := out.String()
	assert.Contains(t, got, `q0 "0" -> q1 "1" right`)
	assert.Contains(t, got, "tape 01\n")
	assert.True(t, strings.HasSuffix(got, "01010010010011101\n"))
}

func TestEncode_Validate(t *testing.T) {
	broken := `{"q0": {"0": {"nextState": "q4", "write": "1", "move": "right"}}}`
	path := writeMachine(t, "broken.json", broken)

	s, out, _ := streams("")
	require.NoError(t, Encode(EncodeOptions{Options: Options{MachinePath: path}}, s))
	assert.NotEmpty(t, out.String(), "encoding does not validate unless asked")

	s, out, _ = streams("")
	err := Encode(EncodeOptions{Options: Options{MachinePath: path}, Validate: true}, s)
	assert.ErrorIs(t, err, machine.ErrMalformedDescription)
	assert.Empty(t, out.String())
}

func TestEncode_DebugLogsToErr(t *testing.T) {
	s, out, errOut := streams("")
	opts := EncodeOptions{Options: Options{MachinePath: writeMachine(t, "inc.json", incrementer), Debug: true}}

	require.NoError(t, Encode(opts, s))
	assert.Equal(t, incrementerBits, out.String())
	assert.Contains(t, errOut.String(), "halt transition ends state")
	assert.Contains(t, errOut.String(), "machine encoded")
}

func TestEncode_Errors(t *testing.T) {
	s, _, _ := streams("")
	err := Encode(EncodeOptions{Options: Options{MachinePath: "x.json", Format: "toml"}}, s)
	assert.ErrorIs(t, err, file.ErrUnknownFormat)

	err = Encode(EncodeOptions{}, s)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	s, _, _ := streams("")
	assert.NoError(t, Validate(Options{MachinePath: writeMachine(t, "inc.json", incrementer)}, s))

	broken := `{"q0": {"B": {"nextState": "q1", "write": "1", "move": "up"}}}`
	err := Validate(Options{MachinePath: writeMachine(t, "broken.json", broken)}, s)
	require.Error(t, err)
	assert.Len(t, machine.ValidationErrors(err), 3)
}

func TestGraph(t *testing.T) {
	s, out, _ := streams("")
	require.NoError(t, Graph(Options{MachinePath: writeMachine(t, "inc.json", incrementer)}, s))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "stateDiagram-v2\n    [*] --> q0\n"))
	assert.Contains(t, got, "q1 --> [*]: 0 / 1, left")
	assert.Contains(t, got, "note right of q1: 2 of 3 transitions not encoded")
}
