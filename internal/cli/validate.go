package cli

import (
	"github.com/aretw0/turing/pkg/machine"
)

// Validate handles the 'validate' command.
// It loads the machine without validation so that every problem is reported by
// machine.Validate in a single error.
func Validate(opts Options, s Streams) error {
	enc, err := newEncoder(opts, s, newLogger(opts, s))
	if err != nil {
		return err
	}

	d, err := enc.Load()
	if err != nil {
		return err
	}
	return machine.Validate(d)
}
