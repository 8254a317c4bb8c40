package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// profilePath picks the shell startup file that should carry the brew
// shellenv line, based on the user's login shell.
func profilePath(home, shellName string) string {
	switch shellName {
	case "zsh":
		return filepath.Join(home, ".zprofile")
	case "bash":
		return filepath.Join(home, ".bash_profile")
	default:
		return filepath.Join(home, ".profile")
	}
}

// shellenvLine is the line appended to the profile so new shells pick
// up the Homebrew environment.
func shellenvLine(brewPath string) string {
	return fmt.Sprintf(`eval "$(%s shellenv)"`, brewPath)
}

// resolveProfile returns the profile file for the current user and shell.
func resolveProfile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	shellName := filepath.Base(os.Getenv("SHELL"))
	return profilePath(home, shellName), nil
}

// EnsureShellenv appends the shellenv eval line for brewPath to the
// user's shell profile unless it is already present.
// Returns (added, profilePath, err); added=false means no change.
func EnsureShellenv(brewPath string) (bool, string, error) {
	profile, err := resolveProfile()
	if err != nil {
		return false, "", err
	}
	added, err := appendShellenv(profile, brewPath)
	return added, profile, err
}

// appendShellenv does the idempotent append against an explicit profile
// path.
func appendShellenv(profile, brewPath string) (bool, error) {
	line := shellenvLine(brewPath)

	existing, readErr := os.ReadFile(profile)
	if readErr == nil && strings.Contains(string(existing), line) {
		return false, nil
	}

	f, err := os.OpenFile(profile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return false, fmt.Errorf("cannot open profile %s: %w", profile, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s\n", line); err != nil {
		return false, fmt.Errorf("cannot write to profile %s: %w", profile, err)
	}
	return true, nil
}

// ShellenvConfigured reports whether the profile already carries the
// shellenv line for brewPath.
func ShellenvConfigured(brewPath string) (bool, string, error) {
	profile, err := resolveProfile()
	if err != nil {
		return false, "", err
	}

	existing, err := os.ReadFile(profile)
	if err != nil {
		if os.IsNotExist(err) {
			return false, profile, nil
		}
		return false, profile, fmt.Errorf("cannot read profile %s: %w", profile, err)
	}
	return strings.Contains(string(existing), shellenvLine(brewPath)), profile, nil
}
