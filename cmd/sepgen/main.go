// Sepgen generates provisioning files for the Cisco 8945 IP phone.
//
// It provides an interactive wizard for filling out the full device
// configuration, a non-interactive generate command driven by an answers
// file, and a small HTTP server that hands the generated SEP<MAC>.cnf.xml
// files to phones on the local network.
//
// Usage:
//
//	sepgen [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'sepgen --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sepgen/sepgen/internal/logging"
	"github.com/sepgen/sepgen/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sepgen",
	Short: "Cisco 8945 SIP Config Generator",
	Long: `A standalone generator for Cisco 8945 provisioning files.

Fill out the device configuration in an interactive wizard, or feed a
YAML answers file to the generate command, and sepgen writes the
SEP<MAC>.cnf.xml file the phone fetches on boot. The serve command can
hand those files to phones directly over HTTP.

If no command is specified, the interactive wizard will launch automatically.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sepgen %s (commit: %s)\n", version.Version, version.Commit)
	},
}
