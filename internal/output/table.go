package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/brewsetup/internal/installer"
	"github.com/blackwell-systems/brewsetup/internal/store"
)

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is
// not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// outcomeLabel maps an outcome to its table display form.
func outcomeLabel(o installer.Outcome) string {
	switch o {
	case installer.CaskInstalled:
		return "cask ✓"
	case installer.FormulaInstalled:
		return "formula ✓"
	case installer.NotFound:
		return "not found"
	case installer.CaskInstallFailed:
		return "cask ✗"
	case installer.FormulaInstallFailed:
		return "formula ✗"
	default:
		return o.String()
	}
}

// RenderResultTable renders the per-package outcomes of a pass in
// install order.
func RenderResultTable(results []installer.Result) string {
	if len(results) == 0 {
		return "No packages in the configured set.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-24s %-12s %s\n", "Package", "Outcome", "Detail"))
	sb.WriteString(strings.Repeat("─", 60))
	sb.WriteString("\n")

	for _, r := range results {
		label := outcomeLabel(r.Outcome)
		if r.Outcome.OK() {
			label = colorize(colorGreen, label)
		} else {
			label = colorize(colorRed, label)
		}
		sb.WriteString(fmt.Sprintf("%-24s %-12s %s\n",
			truncate(r.Name, 24), label, truncate(firstLine(r.Detail), 32)))
	}
	return sb.String()
}

// RenderStoredResultTable renders per-package outcomes read back from
// the history database. Outcome strings this binary does not recognize
// (written by a different version) are shown verbatim instead of being
// coerced into a known outcome.
func RenderStoredResultTable(records []*store.ResultRecord) string {
	if len(records) == 0 {
		return "No packages recorded for this pass.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-24s %-12s %s\n", "Package", "Outcome", "Detail"))
	sb.WriteString(strings.Repeat("─", 60))
	sb.WriteString("\n")

	for _, r := range records {
		var label string
		if outcome, ok := installer.ParseOutcome(r.Outcome); ok {
			label = outcomeLabel(outcome)
			if outcome.OK() {
				label = colorize(colorGreen, label)
			} else {
				label = colorize(colorRed, label)
			}
		} else {
			label = colorize(colorGray, r.Outcome)
		}
		sb.WriteString(fmt.Sprintf("%-24s %-12s %s\n",
			truncate(r.Package, 24), label, truncate(firstLine(r.Detail), 32)))
	}
	return sb.String()
}

// RenderHistoryTable renders recorded passes, newest first.
func RenderHistoryTable(passes []*store.PassRecord) string {
	if len(passes) == 0 {
		return "No passes recorded yet. Run 'brewsetup install' first.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s %-17s %-9s %-7s %-7s %s\n",
		"ID", "Started", "Duration", "Total", "Failed", "Result"))
	sb.WriteString(strings.Repeat("─", 62))
	sb.WriteString("\n")

	for _, p := range passes {
		result := colorize(colorGreen, "ok")
		if !p.Success {
			result = colorize(colorRed, "failed")
		}
		if p.Bootstrapped {
			result += colorize(colorGray, " (bootstrap)")
		}
		sb.WriteString(fmt.Sprintf("%-5d %-17s %-9s %-7d %-7d %s\n",
			p.ID,
			p.StartedAt.Local().Format("2006-01-02 15:04"),
			p.FinishedAt.Sub(p.StartedAt).Round(time.Second).String(),
			p.Total,
			p.Failed,
			result))
	}
	return sb.String()
}

// truncate shortens s to max runes, appending "…" when cut. Cutting on
// rune boundaries keeps multi-byte package names valid UTF-8.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// firstLine returns s up to the first newline. Install failure details
// carry full brew output; tables only have room for the first line.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
