// Package cli implements the cambia CLI surface: parse, rippers, and
// inspect.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cambia",
	Short: "Extract and authenticate CD-ripper log files",
	Long: `cambia ingests the human-readable log files emitted by audio-CD
ripping tools (XLD, and by tag only EAC/whipper) and recovers their
structured content: drive/ripper configuration, table of contents,
per-track extraction results, AccurateRip verification, and an
authenticity verdict derived from the ripper's embedded signature.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(parseCmd, rippersCmd, inspectCmd)
}

// Execute runs the cambia command tree, returning any error from the
// selected subcommand for main to report and translate into an exit code.
func Execute() error {
	return rootCmd.Execute()
}
