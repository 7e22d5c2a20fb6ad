package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/codec"
)

// Encode handles the 'encode' command: it writes the machine's binary encoding,
// followed by the tape input, to s.Out.
func Encode(opts EncodeOptions, s Streams) error {
	logger := newLogger(opts.Options, s)

	var extra []turing.Option
	if opts.Validate {
		extra = append(extra, turing.WithValidation())
	}
	enc, err := newEncoder(opts.Options, s, logger, extra...)
	if err != nil {
		return err
	}

	// Load once: the machine may come from standard input.
	d, err := enc.Load()
	if err != nil {
		return err
	}

	codecOpts := []codec.Option{codec.WithTapeInput(opts.Tape), codec.WithLogger(logger)}
	bits := codec.Encode(d, codecOpts...)
	logger.Debug("machine encoded", "bits", len(bits))

	if opts.Explain {
		return tui.Explain(s.Out, codec.Records(d, codecOpts...), bits, opts.Tape)
	}

	if _, err := io.WriteString(s.Out, bits); err != nil {
		return fmt.Errorf("failed to write encoding: %w", err)
	}
	return endLine(s.Out)
}
