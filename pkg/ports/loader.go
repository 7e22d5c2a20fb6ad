package ports

import "github.com/aretw0/turing/pkg/machine"

// MachineLoader defines how callers obtain a machine description.
// This allows the source (file, memory, network) to be decoupled from encoding.
type MachineLoader interface {
	// Load returns the description with state and trigger order preserved.
	Load() (*machine.Description, error)
}

// DescriptionFunc adapts a plain function to MachineLoader.
type DescriptionFunc func() (*machine.Description, error)

// Load calls f.
func (f DescriptionFunc) Load() (*machine.Description, error) {
	return f()
}
