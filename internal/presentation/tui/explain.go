package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/turing/pkg/codec"
	"github.com/muesli/termenv"
)

// Explain writes a human readable breakdown of an encoding to w: one block per
// record (the transition, then its bit fields), the list terminator, the tape
// input and finally the full bitstring.
//
// Colors follow the terminal profile detected on w unless overridden by opts;
// plain writers such as files and buffers get uncolored text.
func Explain(w io.Writer, records []codec.Record, encoded, tape string, opts ...termenv.OutputOption) error {
	out := termenv.NewOutput(w, opts...)
	palette := []termenv.Color{
		out.Color("#818cf8"), // state
		out.Color("#c084fc"), // trigger
		out.Color("#818cf8"), // next state
		out.Color("#f472b6"), // write
		out.Color("#fb7185"), // move
	}
	sep := out.String("1").Faint().String()
	recordEnd := out.String("11").Bold().String()

	var sb strings.Builder
	for _, r := range records {
		fmt.Fprintf(&sb, "%s %q -> %s %q %s\n",
			r.State, string(r.Trigger), r.Transition.NextState, string(r.Transition.Write), r.Transition.Move)

		parts := make([]string, len(r.Fields))
		for i, f := range r.Fields {
			if f == "" {
				f = "ε"
			}
			parts[i] = out.String(f).Foreground(palette[i%len(palette)]).String()
		}
		fmt.Fprintf(&sb, "    %s %s\n", strings.Join(parts, " "+sep+" "), recordEnd)
	}

	fmt.Fprintf(&sb, "end %s\n", out.String("1").Bold().String())
	if tape != "" {
		fmt.Fprintf(&sb, "tape %s\n", tape)
	}
	fmt.Fprintf(&sb, "%s\n", encoded)

	_, err := io.WriteString(w, sb.String())
	return err
}
