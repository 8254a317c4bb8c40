// Package brew wraps the Homebrew CLI behind a narrow capability
// interface so the install pass can run against a fake in tests
// instead of invoking real brew commands.
package brew

import (
	"fmt"
	"os/exec"
	"strings"
)

// Manager is the package-manager surface the install pass consumes.
// Each operation maps to one brew invocation; success or failure is
// the exit status of that invocation.
type Manager interface {
	// IsCask reports whether name is available as a cask.
	IsCask(name string) bool

	// IsFormula reports whether name is available as a formula.
	IsFormula(name string) bool

	// InstallCask installs name as a cask.
	InstallCask(name string) error

	// InstallFormula installs name as a formula.
	InstallFormula(name string) error

	// Update refreshes the local package index.
	Update() error
}

// System is the real Manager backed by the brew CLI. Bin is the brew
// binary to invoke; when empty, "brew" is resolved via PATH. A freshly
// bootstrapped installation is not on the current process's PATH (the
// profile line only helps future shells), so callers that just
// bootstrapped must set Bin to the resolved binary path.
type System struct {
	Bin string
}

var _ Manager = System{}

func (s System) bin() string {
	if s.Bin == "" {
		return "brew"
	}
	return s.Bin
}

// IsCask queries `brew info --cask`. A non-zero exit means the name is
// not recognized as a cask; the distinction between "unknown name" and
// "brew itself broke" doesn't matter here, both fall through to the
// formula check.
func (s System) IsCask(name string) bool {
	return exec.Command(s.bin(), "info", "--cask", name).Run() == nil
}

// IsFormula queries `brew info --formula`.
func (s System) IsFormula(name string) bool {
	return exec.Command(s.bin(), "info", "--formula", name).Run() == nil
}

// InstallCask installs name via `brew install --cask`.
func (s System) InstallCask(name string) error {
	cmd := exec.Command(s.bin(), "install", "--cask", name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("brew install --cask %s failed: %w (output: %s)", name, err, string(output))
	}
	return nil
}

// InstallFormula installs name via `brew install --formula`.
func (s System) InstallFormula(name string) error {
	cmd := exec.Command(s.bin(), "install", "--formula", name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("brew install --formula %s failed: %w (output: %s)", name, err, string(output))
	}
	return nil
}

// Update refreshes the Homebrew index via `brew update`.
func (s System) Update() error {
	cmd := exec.Command(s.bin(), "update")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("brew update failed: %w (output: %s)", err, string(output))
	}
	return nil
}

// Prefix returns the Homebrew installation prefix.
func Prefix() (string, error) {
	cmd := exec.Command("brew", "--prefix")
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("brew --prefix failed: %w (stderr: %s)", err, string(exitErr.Stderr))
		}
		return "", fmt.Errorf("brew --prefix failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
