package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Append-only audit of every ledger mutation. The JSON snapshot is
		// the authoritative state; this exists for history and auditing.
		`CREATE TABLE IF NOT EXISTS ledger_journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			at DATETIME NOT NULL,
			kind TEXT NOT NULL,
			ref TEXT NOT NULL,
			delta INTEGER NOT NULL,
			balance INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_journal_at ON ledger_journal(at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
