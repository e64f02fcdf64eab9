// Authscreen is a terminal Login / Sign Up screen with client-side
// validation.
//
// It renders the form, validates email format, password length and the
// password confirmation, shows inline errors and hands valid credentials
// to a stub collaborator that only logs them. There is no backend.
//
// Usage:
//
//	authscreen [command] [flags]
//
// Running without arguments opens the interactive screen.
// See 'authscreen --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/authscreen/internal/logging"
	"github.com/muurk/authscreen/internal/version"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "authscreen",
	Short: "Login / Sign Up form with client-side validation",
	Long: `A terminal Login / Sign Up screen.

Fill in email and password (plus a confirmation when signing up) and
submit. Invalid fields are reported inline; valid credentials are handed
to a stub that only logs the submission.

If no command is specified, the interactive screen launches automatically.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE:         runScreen,
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
		fmt.Fprintf(cmd.OutOrStdout(), "authscreen %s\n", version.Full())
	},
}
