/*
Package ports defines the driven ports (interfaces) at the edge of the encoder.

The encoder itself consumes in-memory descriptions only. Anything that obtains a
description from the outside world (files, embedded assets, builders) does so
behind these interfaces.

# Key Interfaces

  - MachineLoader: Responsible for producing a machine.Description (e.g., from a JSON or YAML file).
*/
package ports
