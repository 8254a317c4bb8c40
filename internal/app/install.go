package app

import (
	"fmt"

	"github.com/blackwell-systems/brewsetup/internal/output"
	"github.com/spf13/cobra"
)

var (
	installDryRun       bool
	installQuiet        bool
	installPackagesFile string

	installCmd = &cobra.Command{
		Use:   "install",
		Short: "Run the install pass over the configured package set",
		Long: `Install every package in the configured set, in order.

Each name is first checked as a cask, then as a formula, and installed
under whichever category recognizes it. A failing package is reported
and skipped; the pass always continues to the end. Failed cask installs
are additionally appended to ` + "`brew_install_failures.log`" + ` in the
working directory.

If Homebrew is missing, it is bootstrapped first and your shell profile
gains an 'eval "$(brew shellenv)"' line. Bootstrap or index-refresh
failures abort the pass with a non-zero exit; individual package
failures do not affect the exit status.`,
		Example: `  # Install the built-in set
  brewsetup install

  # Classify only, install nothing
  brewsetup install --dry-run

  # Use a custom list, one name per line
  brewsetup install --packages ~/packages.txt`,
		Args: cobra.NoArgs,
		RunE: runInstall,
	}
)

func init() {
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "classify packages without installing")
	installCmd.Flags().BoolVar(&installQuiet, "quiet", false, "suppress output")
	installCmd.Flags().StringVar(&installPackagesFile, "packages", "", "packages file (default: built-in set)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	names, origin, err := resolvePackages(installPackagesFile)
	if err != nil {
		return err
	}

	if !installQuiet {
		fmt.Printf("Installing %d packages (%s)...\n", len(names), origin)
	}

	report, err := executePass(names, installDryRun, installQuiet)
	if err != nil {
		return err
	}

	if !installQuiet {
		fmt.Println()
		fmt.Print(output.RenderResultTable(report.Results))
		fmt.Println()
		if installDryRun {
			fmt.Printf("Dry run complete: %d packages classified, nothing installed.\n", len(report.Results))
		} else {
			fmt.Println(summaryLine(report))
		}
	}

	return nil
}
