package main

import (
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "utm",
		Short: "utm encodes Turing machines for universal machine simulators",
		Long: `utm reads a Turing machine description (JSON or YAML) and prints its binary encoding,
ready to be placed on the tape of a universal Turing machine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("machine", "i", "", `Machine description file ("-" for stdin)`)
	rootCmd.PersistentFlags().String("format", "", "Machine file format: json or yaml (default: from extension)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log encoding details to stderr")

	encodeCmd := newEncodeCmd()
	rootCmd.AddCommand(encodeCmd, newValidateCmd(), newGraphCmd(), newVersionCmd())

	// Encoding is the default action, as in "utm -i machine.json -t 0110".
	addEncodeFlags(rootCmd)
	rootCmd.Args = encodeCmd.Args
	rootCmd.RunE = encodeCmd.RunE

	return rootCmd
}

// Execute runs the CLI and exits with status 1 on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commonOptions collects the persistent flags. A positional argument overrides --machine.
func commonOptions(cmd *cobra.Command, args []string) cli.Options {
	path, _ := cmd.Flags().GetString("machine")
	if len(args) > 0 {
		path = args[0]
	}
	format, _ := cmd.Flags().GetString("format")
	debug, _ := cmd.Flags().GetBool("debug")

	return cli.Options{
		MachinePath: path,
		Format:      format,
		Debug:       debug,
	}
}

func streams(cmd *cobra.Command) cli.Streams {
	return cli.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
}
