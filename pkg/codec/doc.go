// Package codec encodes a machine.Description into the binary string consumed by
// universal Turing machine simulators.
//
// Every transition becomes one record of five unary fields separated by "1":
//
//	state 1 trigger 1 next 1 write 1 move
//
// Records are followed by "11", the record list by a single "1", and the
// optional tape input is appended verbatim.
//
// State "qN" is a run of N zero bits. When the description contains a "q0"
// state, every state run gains one leading zero so that q0 remains non-empty.
// Symbols use a fixed table:
//
//	"0" -> 0     "1" -> 00     " " -> 000
//	"left" -> 0  "right" -> 00
//
// A transition to "qdone" ends the encoding of its state: neither it nor the
// triggers that follow it in that state produce records.
package codec
