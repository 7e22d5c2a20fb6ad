package codec

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/turing/pkg/machine"
)

const (
	fieldSeparator   = "1"
	recordTerminator = "11"
	listTerminator   = "1"
)

var symbolBits = map[string]string{
	string(machine.Zero):  "0",
	string(machine.One):   "00",
	string(machine.Blank): "000",
	string(machine.Left):  "0",
	string(machine.Right): "00",
}

// Record is the encoded form of a single transition, without its terminator.
type Record struct {
	State      string
	Trigger    machine.Symbol
	Transition machine.Transition

	// Fields holds the bits of state, trigger, next state, write and move.
	Fields []string
	Bits   string
}

// Option configures a single encoding.
type Option func(*encoder)

// WithTapeInput appends input verbatim after the encoded machine.
func WithTapeInput(input string) Option {
	return func(e *encoder) {
		e.tape = input
	}
}

// WithLogger sets the logger used for debug tracing of the encoding.
func WithLogger(logger *slog.Logger) Option {
	return func(e *encoder) {
		if logger != nil {
			e.logger = logger
		}
	}
}

type encoder struct {
	tape   string
	logger *slog.Logger
	offset bool
}

func newEncoder(d *machine.Description, opts []Option) *encoder {
	e := &encoder{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.offset = Offset(d)
	return e
}

// Encode returns the binary encoding of d.
//
// Encode never fails: unknown symbols encode as empty fields and state names
// without a number encode as zero-length runs.
func Encode(d *machine.Description, opts ...Option) string {
	e := newEncoder(d, opts)

	var sb strings.Builder
	for _, r := range e.records(d) {
		sb.WriteString(r.Bits)
		sb.WriteString(recordTerminator)
	}
	sb.WriteString(listTerminator)
	sb.WriteString(e.tape)
	return sb.String()
}

// Records returns the per-transition records of d in output order.
func Records(d *machine.Description, opts ...Option) []Record {
	return newEncoder(d, opts).records(d)
}

func (e *encoder) records(d *machine.Description) []Record {
	e.logger.Debug("encoding machine", "states", d.Len(), "offset", e.offset)

	var out []Record
	for name, table := range d.All() {
		state := EncodeState(name, e.offset)

		for trigger, tr := range table.All() {
			if tr.Halts() {
				e.logger.Debug("halt transition ends state", "state", name, "trigger", string(trigger))
				break
			}

			fields := []string{
				state,
				EncodeSymbol(string(trigger)),
				EncodeState(tr.NextState, e.offset),
				EncodeSymbol(string(tr.Write)),
				EncodeSymbol(string(tr.Move)),
			}
			bits := strings.Join(fields, fieldSeparator)

			e.logger.Debug("encoded transition", "state", name, "trigger", string(trigger), "bits", bits)
			out = append(out, Record{
				State:      name,
				Trigger:    trigger,
				Transition: tr,
				Fields:     fields,
				Bits:       bits,
			})
		}
	}
	return out
}

// Offset reports whether d shifts all state encodings by one bit,
// which happens exactly when d holds a non-nil "q0" entry.
func Offset(d *machine.Description) bool {
	return d.Defines(machine.StartState)
}

// EncodeState returns the unary run for state name, with the extra leading
// zero when offset is set.
func EncodeState(name string, offset bool) string {
	n, _ := machine.StateNumber(name)
	n = max(n, 0)
	if offset {
		n++
	}
	return strings.Repeat("0", n)
}

// EncodeSymbol returns the bits of a tape symbol or head move.
// Unknown values encode as the empty string.
func EncodeSymbol(s string) string {
	return symbolBits[s]
}
