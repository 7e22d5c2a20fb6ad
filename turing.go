package turing

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/codec"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/ports"
)

// Version is the release of the encoder.
const Version = "0.4.1"

// Encode returns the binary encoding of d followed by tape.
// An empty tape appends nothing.
func Encode(d *machine.Description, tape string) string {
	return codec.Encode(d, codec.WithTapeInput(tape))
}

// Encoder is the high-level entry point of the library.
// It binds a machine source to the encoding options.
type Encoder struct {
	loader   ports.MachineLoader
	format   file.Format
	validate bool
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Encoder.
type Option func(*Encoder)

// WithLoader injects a custom MachineLoader, bypassing the default file loader.
func WithLoader(l ports.MachineLoader) Option {
	return func(e *Encoder) {
		e.loader = l
	}
}

// WithDescription encodes an in-memory description instead of loading one.
func WithDescription(d *machine.Description) Option {
	return WithLoader(ports.DescriptionFunc(func() (*machine.Description, error) {
		return d, nil
	}))
}

// WithFormat forces the format of the machine file read by the default loader.
func WithFormat(f file.Format) Option {
	return func(e *Encoder) {
		e.format = f
	}
}

// WithValidation rejects malformed descriptions before encoding.
func WithValidation() Option {
	return func(e *Encoder) {
		e.validate = true
	}
}

// WithLogger sets a custom structured logger for the encoder.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Encoder) {
		e.logger = logger
	}
}

// New initializes an Encoder reading the machine file at path.
// If WithLoader or WithDescription is provided, path can be empty.
func New(path string, opts ...Option) (*Encoder, error) {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}

	if e.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom loader is provided")
		}
		e.loader = file.New(path, file.WithFormat(e.format))
	}

	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if path != "" {
		e.logger = e.logger.With("machine", path)
	}

	return e, nil
}

// Load returns the description, validated if WithValidation was set.
func (e *Encoder) Load() (*machine.Description, error) {
	d, err := e.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load machine: %w", err)
	}
	if e.validate {
		if err := machine.Validate(d); err != nil {
			return nil, err
		}
	}
	e.logger.Debug("machine loaded", "states", d.Len())
	return d, nil
}

// Encode loads the machine and returns its encoding followed by tape.
func (e *Encoder) Encode(tape string) (string, error) {
	d, err := e.Load()
	if err != nil {
		return "", err
	}
	return codec.Encode(d, codec.WithTapeInput(tape), codec.WithLogger(e.logger)), nil
}

// Records loads the machine and returns its encoded transitions.
func (e *Encoder) Records() ([]codec.Record, error) {
	d, err := e.Load()
	if err != nil {
		return nil, err
	}
	return codec.Records(d, codec.WithLogger(e.logger)), nil
}
