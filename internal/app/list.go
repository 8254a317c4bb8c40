package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listPackagesFile string

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the configured package set in install order",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
)

func init() {
	listCmd.Flags().StringVar(&listPackagesFile, "packages", "", "packages file (default: built-in set)")
}

func runList(cmd *cobra.Command, args []string) error {
	names, origin, err := resolvePackages(listPackagesFile)
	if err != nil {
		return err
	}

	fmt.Printf("%d packages (%s):\n", len(names), origin)
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
