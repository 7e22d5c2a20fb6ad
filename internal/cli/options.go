package cli

import (
	"io"
	"log/slog"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/adapters/file"
)

// Options contains the configuration shared by all commands.
type Options struct {
	MachinePath string // Path of the machine file, or "-" for standard input
	Format      string // "json", "yaml" or empty to detect from the extension
	Debug       bool
}

// EncodeOptions contains the configuration of the encode command.
type EncodeOptions struct {
	Options
	Tape     string
	Validate bool
	Explain  bool
}

// Streams groups the I/O of a command.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func newLogger(opts Options, s Streams) *slog.Logger {
	return logging.New(s.Err, logging.Level(opts.Debug))
}

// newEncoder builds the library encoder for opts, reading "-" from s.In.
func newEncoder(opts Options, s Streams, logger *slog.Logger, extra ...turing.Option) (*turing.Encoder, error) {
	format, err := file.ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	loader := file.New(opts.MachinePath, file.WithFormat(format), file.WithStdin(s.In))
	encOpts := append([]turing.Option{
		turing.WithLoader(loader),
		turing.WithLogger(logger),
	}, extra...)

	return turing.New(opts.MachinePath, encOpts...)
}
