package store

import "time"

// PassRecord summarizes one recorded install pass.
type PassRecord struct {
	ID           int64
	StartedAt    time.Time
	FinishedAt   time.Time
	Bootstrapped bool
	Total        int
	Failed       int
	Success      bool
}

// ResultRecord is one package outcome within a pass.
type ResultRecord struct {
	PassID  int64
	Package string
	Outcome string
	Detail  string
}
