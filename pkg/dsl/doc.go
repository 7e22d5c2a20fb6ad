/*
Package dsl provides a fluent builder for constructing machine descriptions in Go.

It is an alternative to writing JSON or YAML machine files, handy for tests, for
generated machines and for hosts that embed the encoder.

Example usage:

	package main

	import (
		"fmt"

		"github.com/aretw0/turing/pkg/codec"
		"github.com/aretw0/turing/pkg/dsl"
		"github.com/aretw0/turing/pkg/machine"
	)

	func main() {
		b := dsl.New()

		b.State("q0").
			On(machine.Zero).Write(machine.One).Right().Go("q1")

		b.State("q1").
			On(machine.Blank).Write(machine.Blank).Left().Halt()

		fmt.Println(codec.Encode(b.Build()))
	}

States and triggers are encoded in the order they are first declared.
*/
package dsl
