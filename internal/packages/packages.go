// Package packages defines the package set brewsetup installs.
package packages

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Default is the built-in package set, installed in order. Casks and
// formulae are mixed freely; the pass classifies each name at install
// time.
var Default = []string{
	"bitwarden",
	"firefox",
	"iterm2",
	"rectangle",
	"visual-studio-code",
	"git",
	"wget",
	"jq",
	"ripgrep",
	"tmux",
	"node",
	"python",
}

// Load reads a packages file: one name per line, blank lines and '#'
// comments skipped. Order is preserved and duplicates are kept —
// installing a name twice is wasteful but not unsafe.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open packages file %s: %w", path, err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read packages file %s: %w", path, err)
	}

	return names, nil
}
