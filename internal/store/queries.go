package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackwell-systems/brewsetup/internal/installer"
)

// RecordPass stores a completed pass and its per-package results.
// Returns the new pass ID.
func (s *Store) RecordPass(rep *installer.Report) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO passes (started_at, finished_at, bootstrapped, total, failed, success)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		rep.StartedAt.Format(time.RFC3339),
		rep.FinishedAt.Format(time.RFC3339),
		rep.Bootstrapped,
		len(rep.Results),
		rep.Failed(),
		rep.OK(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert pass: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get pass id: %w", err)
	}

	for _, r := range rep.Results {
		if _, err := tx.Exec(`
			INSERT INTO pass_results (pass_id, package, outcome, detail)
			VALUES (?, ?, ?, ?)
		`, id, r.Name, r.Outcome.String(), r.Detail); err != nil {
			return 0, fmt.Errorf("failed to insert result for %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit pass: %w", err)
	}
	return id, nil
}

// ListPasses returns all recorded passes, newest first.
func (s *Store) ListPasses() ([]*PassRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, started_at, finished_at, bootstrapped, total, failed, success
		FROM passes
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list passes: %w", err)
	}
	defer rows.Close()

	var passes []*PassRecord
	for rows.Next() {
		rec, err := scanPass(rows)
		if err != nil {
			return nil, err
		}
		passes = append(passes, rec)
	}
	return passes, rows.Err()
}

// GetPass retrieves one pass by ID.
func (s *Store) GetPass(id int64) (*PassRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, started_at, finished_at, bootstrapped, total, failed, success
		FROM passes
		WHERE id = ?
	`, id)

	rec, err := scanPass(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pass %d not found", id)
	}
	return rec, err
}

// LatestPass returns the most recent pass, or an error if none exist.
func (s *Store) LatestPass() (*PassRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, started_at, finished_at, bootstrapped, total, failed, success
		FROM passes
		ORDER BY id DESC
		LIMIT 1
	`)

	rec, err := scanPass(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no passes recorded yet")
	}
	return rec, err
}

// ListResults returns the per-package results of a pass in insertion
// order (which is install order).
func (s *Store) ListResults(passID int64) ([]*ResultRecord, error) {
	rows, err := s.db.Query(`
		SELECT pass_id, package, outcome, detail
		FROM pass_results
		WHERE pass_id = ?
		ORDER BY rowid
	`, passID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for pass %d: %w", passID, err)
	}
	defer rows.Close()

	var results []*ResultRecord
	for rows.Next() {
		var r ResultRecord
		var detail sql.NullString
		if err := rows.Scan(&r.PassID, &r.Package, &r.Outcome, &detail); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		r.Detail = detail.String
		results = append(results, &r)
	}
	return results, rows.Err()
}

// scanner abstracts *sql.Row and *sql.Rows for scanPass.
type scanner interface {
	Scan(dest ...any) error
}

func scanPass(sc scanner) (*PassRecord, error) {
	var rec PassRecord
	var started, finished string

	if err := sc.Scan(&rec.ID, &started, &finished, &rec.Bootstrapped,
		&rec.Total, &rec.Failed, &rec.Success); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan pass: %w", err)
	}

	var err error
	if rec.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if rec.FinishedAt, err = time.Parse(time.RFC3339, finished); err != nil {
		return nil, fmt.Errorf("failed to parse finished_at: %w", err)
	}
	return &rec, nil
}
