package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are run in order on every OpenDB. Statements are idempotent;
// duplicate-column errors from re-run ALTER TABLEs are tolerated.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		start_date       TEXT NOT NULL,
		end_date         TEXT NOT NULL,
		capacity_ceiling INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS stages (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		kind        TEXT NOT NULL
		            CHECK(kind IN ('milestone','cycle','sequence','stage')),
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		color       TEXT NOT NULL DEFAULT '',
		progress    REAL NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stages_plan ON stages(plan_id)`,

	`CREATE TABLE IF NOT EXISTS elements (
		id         TEXT PRIMARY KEY,
		plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		label      TEXT NOT NULL,
		kind       TEXT NOT NULL
		           CHECK(kind IN ('activity','deliverable','task')),
		status     TEXT NOT NULL DEFAULT 'pending'
		           CHECK(status IN ('pending','inprogress','validated','finished')),
		date       TEXT NOT NULL,
		end_date   TEXT,
		progress   REAL NOT NULL DEFAULT 0,
		color      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_elements_plan ON elements(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_elements_date ON elements(plan_id, date)`,

	`CREATE TABLE IF NOT EXISTS stage_elements (
		stage_id   TEXT NOT NULL REFERENCES stages(id) ON DELETE CASCADE,
		element_id TEXT NOT NULL REFERENCES elements(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (stage_id, element_id)
	)`,

	`CREATE TABLE IF NOT EXISTS capacities (
		plan_id      TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		date         TEXT NOT NULL,
		effective    REAL NOT NULL DEFAULT 0,
		busy         REAL NOT NULL DEFAULT 0,
		completed    REAL NOT NULL DEFAULT 0,
		weather_icon TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (plan_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS completions (
		plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		element_id TEXT NOT NULL,
		date       TEXT NOT NULL,
		PRIMARY KEY (plan_id, element_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_date ON completions(plan_id, date)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
