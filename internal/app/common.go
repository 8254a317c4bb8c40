package app

import (
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/brewsetup/internal/bootstrap"
	"github.com/blackwell-systems/brewsetup/internal/brew"
	"github.com/blackwell-systems/brewsetup/internal/faillog"
	"github.com/blackwell-systems/brewsetup/internal/installer"
	"github.com/blackwell-systems/brewsetup/internal/output"
	"github.com/blackwell-systems/brewsetup/internal/packages"
	"github.com/blackwell-systems/brewsetup/internal/store"
)

// resolvePackages returns the package list and a human-readable origin:
// the file named by --packages, or the built-in set.
func resolvePackages(file string) ([]string, string, error) {
	if file == "" {
		return packages.Default, "built-in set", nil
	}
	names, err := packages.Load(file)
	if err != nil {
		return nil, "", err
	}
	return names, file, nil
}

// passDeps are the collaborators of a pass, injectable in tests so the
// bootstrap/refresh decision logic can be exercised without brew.
type passDeps struct {
	find       func() (string, bool)
	bootstrap  func() (string, error)
	newManager func(brewPath string) brew.Manager
	failLog    func() installer.FailureLog
	record     func(report *installer.Report, out io.Writer)
}

func defaultPassDeps() passDeps {
	return passDeps{
		find: brew.Find,
		bootstrap: func() (string, error) {
			runner := &bootstrap.Runner{}
			return runner.Run()
		},
		newManager: func(brewPath string) brew.Manager {
			return brew.System{Bin: brewPath}
		},
		failLog: func() installer.FailureLog {
			return faillog.New(faillog.DefaultPath)
		},
		record: recordHistory,
	}
}

// executePass runs one full installer pass: brew detection, bootstrap
// when absent, index refresh otherwise, the per-package install loop,
// and history recording. A returned error is fatal (bootstrap, profile
// setup, or index refresh failed); per-package failures only show up
// in the report.
func executePass(names []string, dryRun, quiet bool) (*installer.Report, error) {
	return runPassWith(defaultPassDeps(), names, dryRun, quiet)
}

func runPassWith(deps passDeps, names []string, dryRun, quiet bool) (*installer.Report, error) {
	out := io.Writer(os.Stdout)
	if quiet {
		out = io.Discard
	}

	bootstrapped := false
	brewPath, found := deps.find()
	if !found {
		if dryRun {
			return nil, fmt.Errorf("brew not found on PATH; dry run will not bootstrap Homebrew")
		}
		fmt.Fprintln(out, "Homebrew not found — running bootstrap...")
		path, err := deps.bootstrap()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "✓ Homebrew installed: %s\n", path)
		brewPath = path
		bootstrapped = true
	}

	// The manager is built from the resolved binary path: right after a
	// bootstrap the profile line only helps future shells, so a bare
	// "brew" PATH lookup would still fail in this process.
	mgr := deps.newManager(brewPath)

	// A freshly bootstrapped installation is already current; skip the
	// refresh to avoid a redundant network round trip.
	if !bootstrapped && !dryRun {
		spinner := output.NewSpinner("Updating Homebrew index")
		if quiet {
			spinner.SetWriter(io.Discard)
		}
		spinner.Start()
		if err := mgr.Update(); err != nil {
			spinner.Stop()
			return nil, err
		}
		spinner.StopWithMessage("✓ Homebrew index updated")
	}

	var log installer.FailureLog
	if !dryRun {
		log = deps.failLog()
	}

	pass := &installer.Pass{Manager: mgr, Log: log, Out: out, DryRun: dryRun}
	report := pass.Run(names)
	report.Bootstrapped = bootstrapped

	if !dryRun {
		deps.record(report, out)
	}
	return report, nil
}

// recordHistory stores the pass in the history database. History is
// advisory: failures are reported but never fail the pass.
func recordHistory(report *installer.Report, out io.Writer) {
	path, err := getDBPath()
	if err != nil {
		fmt.Fprintf(out, "⚠ could not record pass history: %v\n", err)
		return
	}

	db, err := store.New(path)
	if err != nil {
		fmt.Fprintf(out, "⚠ could not record pass history: %v\n", err)
		return
	}
	defer db.Close()

	if _, err := db.RecordPass(report); err != nil {
		fmt.Fprintf(out, "⚠ could not record pass history: %v\n", err)
	}
}

// summaryLine builds the final informational message for a completed
// pass. The aggregate flag never changes the exit status.
func summaryLine(report *installer.Report) string {
	if report.OK() {
		return fmt.Sprintf("✓ All %d packages installed.", len(report.Results))
	}
	return fmt.Sprintf("⚠ %d of %d packages failed to install. Cask failures are logged in %s.",
		report.Failed(), len(report.Results), faillog.DefaultPath)
}
