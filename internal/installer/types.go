package installer

import "time"

// Outcome classifies the result of one package's install attempt.
type Outcome int

const (
	// CaskInstalled means the name was recognized as a cask and the
	// cask install succeeded.
	CaskInstalled Outcome = iota

	// FormulaInstalled means the name was recognized as a formula and
	// the formula install succeeded.
	FormulaInstalled

	// NotFound means the name was recognized under neither category.
	NotFound

	// CaskInstallFailed means the cask install exited non-zero.
	CaskInstallFailed

	// FormulaInstallFailed means the formula install exited non-zero.
	FormulaInstallFailed
)

// String returns the stable identifier used in the history store.
func (o Outcome) String() string {
	switch o {
	case CaskInstalled:
		return "cask-installed"
	case FormulaInstalled:
		return "formula-installed"
	case NotFound:
		return "not-found"
	case CaskInstallFailed:
		return "cask-install-failed"
	case FormulaInstallFailed:
		return "formula-install-failed"
	default:
		return "unknown"
	}
}

// ParseOutcome is the inverse of Outcome.String, used when reading
// outcomes back from the history store.
func ParseOutcome(s string) (Outcome, bool) {
	switch s {
	case "cask-installed":
		return CaskInstalled, true
	case "formula-installed":
		return FormulaInstalled, true
	case "not-found":
		return NotFound, true
	case "cask-install-failed":
		return CaskInstallFailed, true
	case "formula-install-failed":
		return FormulaInstallFailed, true
	default:
		return NotFound, false
	}
}

// OK reports whether the outcome counts as a successful install.
func (o Outcome) OK() bool {
	return o == CaskInstalled || o == FormulaInstalled
}

// Result records the outcome for a single package.
type Result struct {
	Name    string
	Outcome Outcome
	Detail  string // failure detail or dry-run marker, empty otherwise
}

// Report aggregates one pass over the package list.
type Report struct {
	StartedAt    time.Time
	FinishedAt   time.Time
	Bootstrapped bool
	Results      []Result
}

// OK returns true only if every package installed successfully.
// The flag is informational: it drives the final summary, not the
// process exit status.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if !res.Outcome.OK() {
			return false
		}
	}
	return true
}

// Failed returns the number of packages that did not install.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Outcome.OK() {
			n++
		}
	}
	return n
}
