package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for brewsetup
	RootCmd = &cobra.Command{
		Use:   "brewsetup",
		Short: "One-shot, best-effort Homebrew provisioning",
		Long: `brewsetup installs a configured set of Homebrew packages in a single
best-effort pass. Each name is classified as a cask or a formula and
installed under that category; one package failing never blocks the
rest. When Homebrew itself is missing, brewsetup bootstraps it and
wires your shell profile first.

Failed cask installs are appended to ` + "`brew_install_failures.log`" + ` in
the working directory, and every pass is recorded in a local history
database.

Examples:
  # Install the built-in package set
  brewsetup install

  # Preview without installing anything
  brewsetup install --dry-run

  # Install from your own list (one name per line)
  brewsetup install --packages ~/packages.txt

  # Show what would be installed
  brewsetup list

  # Review past passes
  brewsetup history
  brewsetup history latest

  # Re-run the pass whenever the list changes
  brewsetup watch --packages ~/packages.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("brewsetup: one-shot, best-effort Homebrew provisioning")
			fmt.Println()
			fmt.Println("Run 'brewsetup install' to install the configured package set.")
			fmt.Println("Run 'brewsetup --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path (default: ~/.brewsetup/brewsetup.db)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	// Register subcommands
	RootCmd.AddCommand(installCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(historyCmd)
	RootCmd.AddCommand(watchCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	setupDir := filepath.Join(home, ".brewsetup")
	if err := os.MkdirAll(setupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create brewsetup directory: %w", err)
	}

	return filepath.Join(setupDir, "brewsetup.db"), nil
}
