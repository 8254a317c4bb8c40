package app

import "testing"

func TestRunHistoryWithoutDatabase(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dbPath = ""

	// No database yet: the command reports that and succeeds.
	if err := runHistory(historyCmd, nil); err != nil {
		t.Errorf("runHistory should not fail when no database exists: %v", err)
	}
}
