package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// endLine terminates the output with a newline when w is an interactive terminal.
// Pipes and files receive the bitstring untouched so it can be fed to a simulator as is.
func endLine(w io.Writer) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
