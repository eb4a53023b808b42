package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type JournalRepo struct {
	db *sql.DB
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

func (r *JournalRepo) Insert(ctx context.Context, at time.Time, kind, ref string, delta, balance int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO ledger_journal (at, kind, ref, delta, balance)
		VALUES (?, ?, ?, ?, ?)
	`, at, kind, ref, delta, balance)
	if err != nil {
		return 0, fmt.Errorf("journal insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("journal last insert id: %w", err)
	}
	return id, nil
}

// ListRecent returns up to limit entries, newest first.
func (r *JournalRepo) ListRecent(ctx context.Context, limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, at, kind, ref, delta, balance
		FROM ledger_journal
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("journal list: %w", err)
	}
	defer rows.Close()

	var out []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.At, &e.Kind, &e.Ref, &e.Delta, &e.Balance); err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal rows: %w", err)
	}
	return out, nil
}

// TotalEarned sums all positive deltas ever journaled.
func (r *JournalRepo) TotalEarned(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(delta), 0)
		FROM ledger_journal
		WHERE delta > 0
	`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("journal total earned: %w", err)
	}
	return n, nil
}

// CountSince counts journal entries at or after the given time, optionally
// filtered by kind ("" matches all kinds).
func (r *JournalRepo) CountSince(ctx context.Context, kind string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM ledger_journal WHERE at >= ?`
	args := []any{since}
	if kind != "" {
		query += ` AND kind = ?`
		args = append(args, kind)
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("journal count: %w", err)
	}
	return n, nil
}
