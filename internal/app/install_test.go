package app

import "testing"

func TestInstallFlagSurface(t *testing.T) {
	for _, name := range []string{"dry-run", "quiet", "packages"} {
		if installCmd.Flags().Lookup(name) == nil {
			t.Errorf("install is missing the --%s flag", name)
		}
	}
}

func TestInstallAcceptsNoPositionalArgs(t *testing.T) {
	// The package list is configuration (built-in or --packages), never
	// positional arguments.
	if err := installCmd.Args(installCmd, []string{"git"}); err == nil {
		t.Error("install should reject positional arguments")
	}
	if err := installCmd.Args(installCmd, nil); err != nil {
		t.Errorf("install with no args should be accepted: %v", err)
	}
}
