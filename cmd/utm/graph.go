package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph [machine]",
		Short: "Export the machine as a state diagram",
		Long:  `Outputs a Mermaid diagram (stateDiagram-v2) of the machine's states and transitions.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Graph(commonOptions(cmd, args), streams(cmd))
		},
	}
}
