// Package installer implements the one-shot, best-effort install pass:
// a strictly sequential loop that classifies each package name as cask
// or formula, installs it under that category, and accounts outcomes.
package installer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/blackwell-systems/brewsetup/internal/brew"
)

// FailureLog receives the names of casks whose install failed.
// Formula failures are intentionally not sent here: only cask
// failures get a persistent record.
type FailureLog interface {
	Append(name string) error
}

// Pass runs an ordered package list through the package manager.
// One package's failure never blocks subsequent packages.
type Pass struct {
	Manager brew.Manager
	Log     FailureLog // may be nil (e.g. dry run)
	Out     io.Writer  // diagnostics; defaults to os.Stdout
	DryRun  bool       // classify and report without installing
}

// Run executes the pass over names, in order, and returns the report.
func (p *Pass) Run(names []string) *Report {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	report := &Report{StartedAt: time.Now()}
	for _, name := range names {
		report.Results = append(report.Results, p.installOne(out, name))
	}
	report.FinishedAt = time.Now()
	return report
}

// installOne applies the cask-then-formula decision procedure to a
// single name. Cask failures are appended to the failure log; formula
// failures and unknown names only surface as diagnostics and a failed
// outcome.
func (p *Pass) installOne(out io.Writer, name string) Result {
	if p.Manager.IsCask(name) {
		if p.DryRun {
			fmt.Fprintf(out, "  %s: cask (dry run, not installed)\n", name)
			return Result{Name: name, Outcome: CaskInstalled, Detail: "dry run"}
		}
		if err := p.Manager.InstallCask(name); err != nil {
			fmt.Fprintf(out, "✗ cask install failed: %s\n", name)
			if p.Log != nil {
				if logErr := p.Log.Append(name); logErr != nil {
					fmt.Fprintf(out, "⚠ could not record failure for %s: %v\n", name, logErr)
				}
			}
			return Result{Name: name, Outcome: CaskInstallFailed, Detail: err.Error()}
		}
		fmt.Fprintf(out, "✓ cask installed: %s\n", name)
		return Result{Name: name, Outcome: CaskInstalled}
	}

	if p.Manager.IsFormula(name) {
		if p.DryRun {
			fmt.Fprintf(out, "  %s: formula (dry run, not installed)\n", name)
			return Result{Name: name, Outcome: FormulaInstalled, Detail: "dry run"}
		}
		if err := p.Manager.InstallFormula(name); err != nil {
			fmt.Fprintf(out, "✗ formula install failed: %s\n", name)
			return Result{Name: name, Outcome: FormulaInstallFailed, Detail: err.Error()}
		}
		fmt.Fprintf(out, "✓ formula installed: %s\n", name)
		return Result{Name: name, Outcome: FormulaInstalled}
	}

	fmt.Fprintf(out, "✗ not found as cask or formula: %s\n", name)
	return Result{Name: name, Outcome: NotFound}
}
