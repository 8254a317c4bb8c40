package store

import (
	"testing"
	"time"

	"github.com/blackwell-systems/brewsetup/internal/installer"
)

func sampleReport() *installer.Report {
	started := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	return &installer.Report{
		StartedAt:    started,
		FinishedAt:   started.Add(90 * time.Second),
		Bootstrapped: true,
		Results: []installer.Result{
			{Name: "git", Outcome: installer.FormulaInstalled},
			{Name: "bitwarden", Outcome: installer.CaskInstallFailed, Detail: "exit status 1"},
			{Name: "ghost", Outcome: installer.NotFound},
		},
	}
}

func TestRecordAndGetPass(t *testing.T) {
	s := newTestStore(t)

	id, err := s.RecordPass(sampleReport())
	if err != nil {
		t.Fatalf("RecordPass failed: %v", err)
	}

	rec, err := s.GetPass(id)
	if err != nil {
		t.Fatalf("GetPass failed: %v", err)
	}
	if rec.Total != 3 {
		t.Errorf("Total = %d, want 3", rec.Total)
	}
	if rec.Failed != 2 {
		t.Errorf("Failed = %d, want 2", rec.Failed)
	}
	if rec.Success {
		t.Error("Success should be false")
	}
	if !rec.Bootstrapped {
		t.Error("Bootstrapped should be true")
	}
	if rec.FinishedAt.Sub(rec.StartedAt) != 90*time.Second {
		t.Errorf("duration = %v, want 90s", rec.FinishedAt.Sub(rec.StartedAt))
	}
}

func TestListResultsPreservesOrder(t *testing.T) {
	s := newTestStore(t)

	id, err := s.RecordPass(sampleReport())
	if err != nil {
		t.Fatal(err)
	}

	results, err := s.ListResults(id)
	if err != nil {
		t.Fatalf("ListResults failed: %v", err)
	}

	wantOrder := []string{"git", "bitwarden", "ghost"}
	if len(results) != len(wantOrder) {
		t.Fatalf("got %d results, want %d", len(results), len(wantOrder))
	}
	for i, want := range wantOrder {
		if results[i].Package != want {
			t.Errorf("result %d = %s, want %s", i, results[i].Package, want)
		}
	}
	if results[1].Outcome != "cask-install-failed" {
		t.Errorf("outcome = %q, want cask-install-failed", results[1].Outcome)
	}
	if results[1].Detail != "exit status 1" {
		t.Errorf("detail = %q", results[1].Detail)
	}
}

func TestLatestPass(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.LatestPass(); err == nil {
		t.Error("LatestPass on empty store should fail")
	}

	first, err := s.RecordPass(sampleReport())
	if err != nil {
		t.Fatal(err)
	}

	ok := sampleReport()
	ok.Results = []installer.Result{{Name: "git", Outcome: installer.FormulaInstalled}}
	second, err := s.RecordPass(ok)
	if err != nil {
		t.Fatal(err)
	}
	if second <= first {
		t.Fatalf("pass IDs should increase: %d then %d", first, second)
	}

	latest, err := s.LatestPass()
	if err != nil {
		t.Fatalf("LatestPass failed: %v", err)
	}
	if latest.ID != second {
		t.Errorf("latest = %d, want %d", latest.ID, second)
	}
	if !latest.Success {
		t.Error("latest pass should be a success")
	}
}

func TestListPassesNewestFirst(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := s.RecordPass(sampleReport()); err != nil {
			t.Fatal(err)
		}
	}

	passes, err := s.ListPasses()
	if err != nil {
		t.Fatalf("ListPasses failed: %v", err)
	}
	if len(passes) != 3 {
		t.Fatalf("got %d passes, want 3", len(passes))
	}
	for i := 1; i < len(passes); i++ {
		if passes[i-1].ID <= passes[i].ID {
			t.Errorf("passes not newest-first: %d before %d", passes[i-1].ID, passes[i].ID)
		}
	}
}

func TestGetPassMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetPass(42); err == nil {
		t.Error("expected error for missing pass")
	}
}
