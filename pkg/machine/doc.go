/*
Package machine contains the domain model of a deterministic Turing machine description.

A Description maps state names to transition tables, and a Table maps the tape symbol
under the head to the Transition that fires. Both keep insertion order: the order in
which states and triggers were defined is part of the machine's encoded form, so they
are backed by ordered maps rather than Go maps.

# Key Entities

  - Symbol: a tape symbol ("0", "1" or the blank " ").
  - Move: a head direction ("left" or "right").
  - Transition: the next state, the symbol to write and the head move.
  - Table: the transitions of a single state, keyed by trigger symbol.
  - Description: the whole machine, keyed by state name ("q0", "q1", ...).

The package performs no validation on construction. Validate can be called explicitly
to check a description before handing it to an encoder.
*/
package machine
