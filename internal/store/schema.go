package store

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every Open. Statements use
// IF NOT EXISTS so reruns are harmless.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL DEFAULT '',
		difficulty      TEXT NOT NULL,
		total_problems  INTEGER NOT NULL DEFAULT 0,
		correct_count   INTEGER NOT NULL DEFAULT 0,
		incorrect_count INTEGER NOT NULL DEFAULT 0,
		status          TEXT NOT NULL DEFAULT 'active',
		problem_ids     TEXT NOT NULL DEFAULT '[]',
		started_at      TEXT NOT NULL,
		completed_at    TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS problems (
		id            TEXT PRIMARY KEY,
		question_text TEXT NOT NULL,
		solution_text TEXT NOT NULL,
		difficulty    TEXT NOT NULL,
		topic         TEXT NOT NULL DEFAULT '',
		standard_id   TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS responses (
		id              TEXT PRIMARY KEY,
		session_id      TEXT NOT NULL REFERENCES sessions(id),
		problem_id      TEXT NOT NULL REFERENCES problems(id),
		correct         INTEGER NOT NULL,
		elapsed_seconds INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_responses_session ON responses(session_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,
}

func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
