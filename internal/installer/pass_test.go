package installer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// fakeManager classifies and installs from fixed sets so tests never
// touch real brew.
type fakeManager struct {
	casks        map[string]bool
	formulae     map[string]bool
	failInstall  map[string]bool
	installOrder []string
	updated      int
}

func (m *fakeManager) IsCask(name string) bool    { return m.casks[name] }
func (m *fakeManager) IsFormula(name string) bool { return m.formulae[name] }

func (m *fakeManager) InstallCask(name string) error {
	m.installOrder = append(m.installOrder, "cask:"+name)
	if m.failInstall[name] {
		return errors.New("simulated cask failure")
	}
	return nil
}

func (m *fakeManager) InstallFormula(name string) error {
	m.installOrder = append(m.installOrder, "formula:"+name)
	if m.failInstall[name] {
		return errors.New("simulated formula failure")
	}
	return nil
}

func (m *fakeManager) Update() error {
	m.updated++
	return nil
}

// fakeLog records appended names.
type fakeLog struct {
	names []string
	err   error
}

func (l *fakeLog) Append(name string) error {
	if l.err != nil {
		return l.err
	}
	l.names = append(l.names, name)
	return nil
}

func TestFormulaSuccessProducesNoLogRecord(t *testing.T) {
	mgr := &fakeManager{formulae: map[string]bool{"git": true}}
	log := &fakeLog{}
	pass := &Pass{Manager: mgr, Log: log, Out: &bytes.Buffer{}}

	report := pass.Run([]string{"git"})

	if !report.OK() {
		t.Error("pass should succeed when the only formula installs")
	}
	if len(log.names) != 0 {
		t.Errorf("expected no log records, got %v", log.names)
	}
	if report.Results[0].Outcome != FormulaInstalled {
		t.Errorf("outcome = %v, want FormulaInstalled", report.Results[0].Outcome)
	}
}

func TestCaskFailureIsLoggedOnce(t *testing.T) {
	mgr := &fakeManager{
		casks:       map[string]bool{"bitwarden": true},
		failInstall: map[string]bool{"bitwarden": true},
	}
	log := &fakeLog{}
	var buf bytes.Buffer
	pass := &Pass{Manager: mgr, Log: log, Out: &buf}

	report := pass.Run([]string{"bitwarden"})

	if report.OK() {
		t.Error("pass flag should be failure")
	}
	if len(log.names) != 1 || log.names[0] != "bitwarden" {
		t.Errorf("expected exactly one log record for bitwarden, got %v", log.names)
	}
	if report.Results[0].Outcome != CaskInstallFailed {
		t.Errorf("outcome = %v, want CaskInstallFailed", report.Results[0].Outcome)
	}
	if !strings.Contains(buf.String(), "bitwarden") {
		t.Error("diagnostic should name the failed package")
	}
}

func TestFormulaFailureIsNotLogged(t *testing.T) {
	mgr := &fakeManager{
		formulae:    map[string]bool{"wget": true},
		failInstall: map[string]bool{"wget": true},
	}
	log := &fakeLog{}
	pass := &Pass{Manager: mgr, Log: log, Out: &bytes.Buffer{}}

	report := pass.Run([]string{"wget"})

	if report.OK() {
		t.Error("pass flag should be failure")
	}
	if len(log.names) != 0 {
		t.Errorf("formula failures must not be logged, got %v", log.names)
	}
	if report.Results[0].Outcome != FormulaInstallFailed {
		t.Errorf("outcome = %v, want FormulaInstallFailed", report.Results[0].Outcome)
	}
}

func TestNotFoundMarksFailureWithoutLogRecord(t *testing.T) {
	mgr := &fakeManager{}
	log := &fakeLog{}
	pass := &Pass{Manager: mgr, Log: log, Out: &bytes.Buffer{}}

	report := pass.Run([]string{"no-such-package"})

	if report.OK() {
		t.Error("pass flag should be failure")
	}
	if len(log.names) != 0 {
		t.Errorf("not-found must not be logged, got %v", log.names)
	}
	if report.Results[0].Outcome != NotFound {
		t.Errorf("outcome = %v, want NotFound", report.Results[0].Outcome)
	}
	if len(mgr.installOrder) != 0 {
		t.Errorf("no install should be attempted, got %v", mgr.installOrder)
	}
}

func TestFailureDoesNotBlockLaterPackages(t *testing.T) {
	mgr := &fakeManager{
		casks:       map[string]bool{"bitwarden": true},
		formulae:    map[string]bool{"git": true, "jq": true},
		failInstall: map[string]bool{"bitwarden": true},
	}
	pass := &Pass{Manager: mgr, Log: &fakeLog{}, Out: &bytes.Buffer{}}

	report := pass.Run([]string{"git", "bitwarden", "jq"})

	wantOrder := []string{"formula:git", "cask:bitwarden", "formula:jq"}
	if len(mgr.installOrder) != len(wantOrder) {
		t.Fatalf("install order %v, want %v", mgr.installOrder, wantOrder)
	}
	for i, want := range wantOrder {
		if mgr.installOrder[i] != want {
			t.Errorf("install %d = %s, want %s", i, mgr.installOrder[i], want)
		}
	}
	if report.OK() {
		t.Error("pass flag should be failure")
	}
	if report.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", report.Failed())
	}
}

func TestCaskCheckedBeforeFormula(t *testing.T) {
	// A name available under both categories installs as a cask.
	mgr := &fakeManager{
		casks:    map[string]bool{"docker": true},
		formulae: map[string]bool{"docker": true},
	}
	pass := &Pass{Manager: mgr, Out: &bytes.Buffer{}}

	report := pass.Run([]string{"docker"})

	if report.Results[0].Outcome != CaskInstalled {
		t.Errorf("outcome = %v, want CaskInstalled", report.Results[0].Outcome)
	}
	if len(mgr.installOrder) != 1 || mgr.installOrder[0] != "cask:docker" {
		t.Errorf("install order = %v, want [cask:docker]", mgr.installOrder)
	}
}

func TestDryRunInstallsNothing(t *testing.T) {
	mgr := &fakeManager{
		casks:    map[string]bool{"bitwarden": true},
		formulae: map[string]bool{"git": true},
	}
	log := &fakeLog{}
	pass := &Pass{Manager: mgr, Log: log, Out: &bytes.Buffer{}, DryRun: true}

	report := pass.Run([]string{"bitwarden", "git", "missing"})

	if len(mgr.installOrder) != 0 {
		t.Errorf("dry run must not install, got %v", mgr.installOrder)
	}
	if len(log.names) != 0 {
		t.Errorf("dry run must not log, got %v", log.names)
	}
	if report.Results[0].Detail != "dry run" || report.Results[1].Detail != "dry run" {
		t.Error("classified dry-run results should carry the dry run marker")
	}
	if report.Results[2].Outcome != NotFound {
		t.Errorf("unknown name outcome = %v, want NotFound", report.Results[2].Outcome)
	}
}

func TestLogAppendErrorDoesNotAbortPass(t *testing.T) {
	mgr := &fakeManager{
		casks:       map[string]bool{"bitwarden": true},
		formulae:    map[string]bool{"git": true},
		failInstall: map[string]bool{"bitwarden": true},
	}
	log := &fakeLog{err: errors.New("read-only filesystem")}
	var buf bytes.Buffer
	pass := &Pass{Manager: mgr, Log: log, Out: &buf}

	report := pass.Run([]string{"bitwarden", "git"})

	if len(report.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(report.Results))
	}
	if report.Results[1].Outcome != FormulaInstalled {
		t.Error("pass should continue past a log write failure")
	}
	if !strings.Contains(buf.String(), "could not record failure") {
		t.Error("log write failure should be surfaced as a diagnostic")
	}
}

func TestNilLogIsSafe(t *testing.T) {
	mgr := &fakeManager{
		casks:       map[string]bool{"bitwarden": true},
		failInstall: map[string]bool{"bitwarden": true},
	}
	pass := &Pass{Manager: mgr, Out: &bytes.Buffer{}}

	report := pass.Run([]string{"bitwarden"})
	if report.Results[0].Outcome != CaskInstallFailed {
		t.Errorf("outcome = %v, want CaskInstallFailed", report.Results[0].Outcome)
	}
}

func TestOutcomeStrings(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
		ok      bool
	}{
		{CaskInstalled, "cask-installed", true},
		{FormulaInstalled, "formula-installed", true},
		{NotFound, "not-found", false},
		{CaskInstallFailed, "cask-install-failed", false},
		{FormulaInstallFailed, "formula-install-failed", false},
		{Outcome(99), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.outcome.OK(); got != tt.ok {
				t.Errorf("OK() = %v, want %v", got, tt.ok)
			}
		})
	}
}

func TestReportOKOnEmptyList(t *testing.T) {
	report := &Report{}
	if !report.OK() {
		t.Error("empty report should be OK (vacuous AND)")
	}
	if report.Failed() != 0 {
		t.Errorf("Failed() = %d, want 0", report.Failed())
	}
}
