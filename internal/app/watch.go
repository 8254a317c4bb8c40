package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blackwell-systems/brewsetup/internal/packages"
	"github.com/blackwell-systems/brewsetup/internal/watcher"
	"github.com/spf13/cobra"
)

var (
	watchPackagesFile string
	watchQuiet        bool

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-run the install pass whenever the packages file changes",
		Long: `Runs an install pass immediately, then watches the packages file and
re-runs the pass after each change. Runs in the foreground; press
Ctrl-C to stop. Passes are strictly serialized — edits made while a
pass is running coalesce into one follow-up pass.`,
		Example: `  brewsetup watch --packages ~/packages.txt`,
		Args:    cobra.NoArgs,
		RunE:    runWatch,
	}
)

func init() {
	watchCmd.Flags().StringVar(&watchPackagesFile, "packages", "", "packages file to watch (required)")
	watchCmd.Flags().BoolVar(&watchQuiet, "quiet", false, "suppress per-package output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchPackagesFile == "" {
		return fmt.Errorf("watch requires --packages FILE (the built-in set cannot change)")
	}
	if _, err := os.Stat(watchPackagesFile); err != nil {
		return fmt.Errorf("cannot watch packages file: %w", err)
	}

	runPass := func() {
		names, err := packages.Load(watchPackagesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}
		fmt.Printf("Running pass over %d packages...\n", len(names))
		report, err := executePass(names, false, watchQuiet)
		if err != nil {
			// Fatal for a one-shot pass, but the watcher keeps going so a
			// later edit can succeed.
			fmt.Fprintf(os.Stderr, "watch: pass aborted: %v\n", err)
			return
		}
		fmt.Println(summaryLine(report))
	}

	w, err := watcher.New(watchPackagesFile, runPass)
	if err != nil {
		return err
	}

	// Initial pass runs before the watcher starts so passes stay
	// strictly serialized: afterwards only the watcher goroutine runs
	// them.
	runPass()

	if err := w.Start(); err != nil {
		return err
	}
	fmt.Printf("Watching %s — press Ctrl-C to stop.\n", watchPackagesFile)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	fmt.Fprintf(os.Stderr, "received signal %v, shutting down...\n", sig)

	return w.Stop()
}
