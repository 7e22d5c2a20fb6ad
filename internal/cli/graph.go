package cli

import (
	"io"

	"github.com/aretw0/turing/internal/presentation/graph"
)

// Graph handles the 'graph' command: it writes a Mermaid state diagram of the machine.
func Graph(opts Options, s Streams) error {
	enc, err := newEncoder(opts, s, newLogger(opts, s))
	if err != nil {
		return err
	}

	d, err := enc.Load()
	if err != nil {
		return err
	}

	_, err = io.WriteString(s.Out, graph.GenerateMermaid(d))
	return err
}
