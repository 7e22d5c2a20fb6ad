/*
Package turing encodes deterministic Turing machine descriptions into the binary
string understood by universal Turing machine simulators.

A machine is a set of states ("q0", "q1", ...) whose transitions say, for each
symbol under the head ("0", "1" or blank), which state comes next, what is
written and where the head moves. The encoding turns every transition into a
record of unary fields, closes the list with a terminator bit and appends the
tape the encoded machine should start on.

# Concept

The encoding is a pure function of the description: given the same states in
the same order, the output is always the same bitstring. Order matters, so
descriptions are kept in insertion-ordered maps and machine files are decoded
with their key order intact.

# Key Features

  - Bit-exact encoding, including the q0 offset and the qdone truncation rules.
  - JSON and YAML machine files, with state and trigger order preserved.
  - Opt-in validation that reports every problem at once.
  - A fluent builder (package dsl) for machines defined in Go.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/turing"
	)

	func main() {
		enc, err := turing.New("./increment.json", turing.WithValidation())
		if err != nil {
			log.Fatal(err)
		}

		bits, err := enc.Encode("1011")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(bits)
	}
*/
package turing
