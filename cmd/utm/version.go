package main

import (
	"fmt"

	"github.com/aretw0/turing"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of utm",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "utm version %s\n", turing.Version)
		},
	}
}
