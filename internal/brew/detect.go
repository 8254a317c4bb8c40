package brew

import "os/exec"

// Find resolves the brew binary on PATH.
// Returns the resolved path and whether it was found.
func Find() (string, bool) {
	path, err := exec.LookPath("brew")
	if err != nil {
		return "", false
	}
	return path, true
}

// DefaultBinaryPath returns where the Homebrew installer places the
// brew binary for the given GOARCH value. Apple Silicon installs land
// under /opt/homebrew, everything else under /usr/local.
func DefaultBinaryPath(goarch string) string {
	if goarch == "arm64" {
		return "/opt/homebrew/bin/brew"
	}
	return "/usr/local/bin/brew"
}
