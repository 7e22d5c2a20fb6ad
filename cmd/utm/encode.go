package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [machine]",
		Short: "Print the binary encoding of a machine",
		Long: `Encodes every transition of the machine as unary fields separated by 1s, closes the
list with a terminator bit and appends the tape input verbatim.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tape, _ := cmd.Flags().GetString("tape")
			validate, _ := cmd.Flags().GetBool("validate")
			explain, _ := cmd.Flags().GetBool("explain")

			return cli.Encode(cli.EncodeOptions{
				Options:  commonOptions(cmd, args),
				Tape:     tape,
				Validate: validate,
				Explain:  explain,
			}, streams(cmd))
		},
	}
	addEncodeFlags(cmd)
	return cmd
}

func addEncodeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("tape", "t", "", "Input tape of the encoded machine, appended verbatim")
	cmd.Flags().Bool("validate", false, "Reject malformed machines instead of encoding them")
	cmd.Flags().Bool("explain", false, "Print a per-transition breakdown of the encoding")
}
