// Package bootstrap installs Homebrew itself when it is absent and
// wires the user's shell profile so later shells can find it.
package bootstrap

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/blackwell-systems/brewsetup/internal/brew"
)

// InstallScriptURL is the upstream Homebrew installer location.
const InstallScriptURL = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"

// Runner executes the one-time bootstrap. The zero value runs the real
// upstream installer; fields exist so tests can substitute the script
// invocation and the expected binary location.
type Runner struct {
	RunScript  func() error // defaults to fetching and running InstallScriptURL
	Arch       string       // defaults to runtime.GOARCH
	BinaryPath string       // defaults to brew.DefaultBinaryPath(Arch)
}

// Run installs Homebrew, verifies the binary landed at the expected
// architecture-dependent location, and appends the shellenv line to the
// user's profile. Any step failing is fatal to the caller's pass; there
// is no retry. Returns the resolved brew binary path.
func (r *Runner) Run() (string, error) {
	runScript := r.RunScript
	if runScript == nil {
		runScript = runInstallScript
	}
	if err := runScript(); err != nil {
		return "", fmt.Errorf("homebrew bootstrap failed: %w", err)
	}

	arch := r.Arch
	if arch == "" {
		arch = runtime.GOARCH
	}
	brewPath := r.BinaryPath
	if brewPath == "" {
		brewPath = brew.DefaultBinaryPath(arch)
	}
	if _, err := os.Stat(brewPath); err != nil {
		return "", fmt.Errorf("brew binary not found at %s after bootstrap: %w", brewPath, err)
	}

	if _, _, err := EnsureShellenv(brewPath); err != nil {
		return "", fmt.Errorf("shell profile setup failed: %w", err)
	}

	return brewPath, nil
}

// runInstallScript fetches and executes the upstream installer the way
// Homebrew documents it. NONINTERACTIVE suppresses the installer's
// confirmation prompt since there is no user at the keyboard mid-pass.
func runInstallScript() error {
	script := fmt.Sprintf(`/bin/bash -c "$(curl -fsSL %s)"`, InstallScriptURL)
	cmd := exec.Command("/bin/bash", "-c", script)
	cmd.Env = append(os.Environ(), "NONINTERACTIVE=1")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("install script failed: %w", err)
	}
	return nil
}
