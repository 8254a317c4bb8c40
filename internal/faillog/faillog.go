// Package faillog appends cask install failures to a flat text file.
// The file is created lazily on the first failure and is append-only:
// nothing in brewsetup ever truncates or deletes it.
package faillog

import (
	"fmt"
	"os"
	"time"
)

// DefaultPath is the fixed log file name, relative to the working
// directory the pass runs in.
const DefaultPath = "brew_install_failures.log"

const header = "# casks that failed to install via brewsetup"

// Logger records failed cask installs, one line per failure.
// It assumes a single sequential caller; there is no locking.
type Logger struct {
	Path string

	now func() time.Time // overridable in tests
}

// New returns a Logger writing to path.
func New(path string) *Logger {
	return &Logger{Path: path, now: time.Now}
}

// Append writes a "timestamp - name" line in local time. When the file
// does not yet exist it is created with a one-line header comment.
func (l *Logger) Append(name string) error {
	_, statErr := os.Stat(l.Path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open failure log %s: %w", l.Path, err)
	}
	defer f.Close()

	if newFile {
		if _, err := fmt.Fprintln(f, header); err != nil {
			return fmt.Errorf("cannot write failure log header: %w", err)
		}
	}

	now := l.now
	if now == nil {
		now = time.Now
	}
	if _, err := fmt.Fprintf(f, "%s - %s\n", now().Format("2006-01-02 15:04:05"), name); err != nil {
		return fmt.Errorf("cannot write to failure log %s: %w", l.Path, err)
	}
	return nil
}
