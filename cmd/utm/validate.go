package main

import (
	"fmt"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [machine]",
		Short: "Check the machine for consistency",
		Long:  `Reports unknown symbols and moves, malformed state names and transitions to undefined states.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.Validate(commonOptions(cmd, args), streams(cmd)); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Machine is valid! ✅")
			return nil
		},
	}
}
