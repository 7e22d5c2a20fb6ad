package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/codec"
	"github.com/aretw0/turing/pkg/machine"
)

// GenerateMermaid produces a Mermaid state diagram from a machine description.
//
// Every transition becomes an edge labelled "read / write, move"; transitions to
// the halt state point at the final pseudo-state [*]. The entry arrow points at
// q0 when it is defined, otherwise at the first declared state.
// States whose transitions are partly left out of the binary encoding (everything
// from the first halt transition onwards) get a note with the count.
func GenerateMermaid(d *machine.Description) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	names := d.Names()
	if len(names) == 0 {
		return sb.String()
	}

	entry := names[0]
	if d.Defines(machine.StartState) {
		entry = machine.StartState
	}
	fmt.Fprintf(&sb, "    [*] --> %s\n", sanitizeMermaidID(entry))

	encoded := make(map[string]int)
	for _, r := range codec.Records(d) {
		encoded[r.State]++
	}

	for name, table := range d.All() {
		safeID := sanitizeMermaidID(name)
		if table.Len() == 0 {
			fmt.Fprintf(&sb, "    %s\n", safeID)
			continue
		}

		for trigger, tr := range table.All() {
			target := "[*]"
			if !tr.Halts() {
				target = sanitizeMermaidID(tr.NextState)
			}
			fmt.Fprintf(&sb, "    %s --> %s: %s / %s, %s\n",
				safeID, target, symbolLabel(trigger), symbolLabel(tr.Write), tr.Move)
		}

		if dropped := table.Len() - encoded[name]; dropped > 0 {
			fmt.Fprintf(&sb, "    note right of %s: %d of %d transitions not encoded\n", safeID, dropped, table.Len())
		}
	}

	return sb.String()
}

func symbolLabel(s machine.Symbol) string {
	if s == machine.Blank {
		return "␣"
	}
	return string(s)
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_", ":", "_")
	return r.Replace(id)
}
