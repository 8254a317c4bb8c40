package store

const schema = `
CREATE TABLE IF NOT EXISTS passes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP NOT NULL,
    bootstrapped BOOLEAN NOT NULL,
    total INTEGER NOT NULL,
    failed INTEGER NOT NULL,
    success BOOLEAN NOT NULL
);

CREATE TABLE IF NOT EXISTS pass_results (
    pass_id INTEGER NOT NULL,
    package TEXT NOT NULL,
    outcome TEXT NOT NULL,
    detail TEXT,
    FOREIGN KEY (pass_id) REFERENCES passes(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_results_pass ON pass_results(pass_id);
CREATE INDEX IF NOT EXISTS idx_results_package ON pass_results(package);
`
