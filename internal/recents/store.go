package recents

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/telemetry"
)

const schema = `
CREATE TABLE IF NOT EXISTS recents (
    position    INTEGER PRIMARY KEY,
    item_id     TEXT NOT NULL UNIQUE,
    recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store persists a History in a local SQLite database in WAL mode.
type Store struct {
	db *sql.DB

	// Telemetry receives recents_saved and recents_cleared events. Optional.
	Telemetry *telemetry.Emitter
}

// NewStore opens (or creates) the database at dbPath and creates the schema.
func NewStore(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("recents: open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("recents: %s: %w", pragma, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("recents: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save replaces the stored list with h's items in order.
func (s *Store) Save(ctx context.Context, h *History) error {
	items := h.Items()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("recents: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM recents"); err != nil {
		return fmt.Errorf("recents: clear before save: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO recents (position, item_id) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("recents: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, it := range items {
		if _, err := stmt.ExecContext(ctx, i, it.ID.String()); err != nil {
			return fmt.Errorf("recents: insert %s: %w", it.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("recents: commit: %w", err)
	}

	_ = s.Telemetry.Emit(telemetry.Event{
		Kind: telemetry.KindRecentsSaved,
		Data: map[string]int{"count": len(items)},
	})
	return nil
}

// Load restores h from the database, resolving identifiers through lookup.
// Identifiers lookup cannot resolve are skipped and counted in the returned
// value.
func (s *Store) Load(ctx context.Context, h *History, lookup item.Lookup) (skipped int, err error) {
	rows, err := s.db.QueryContext(ctx, "SELECT item_id FROM recents ORDER BY position")
	if err != nil {
		return 0, fmt.Errorf("recents: query: %w", err)
	}
	defer rows.Close()

	var items []*item.Item
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return 0, fmt.Errorf("recents: scan: %w", err)
		}
		id, err := item.ParseID(raw)
		if err != nil {
			skipped++
			continue
		}
		it, ok := lookupItem(lookup, id)
		if !ok {
			skipped++
			continue
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("recents: rows: %w", err)
	}

	h.Restore(items)
	return skipped, nil
}

func lookupItem(lookup item.Lookup, id item.ID) (*item.Item, bool) {
	if lookup == nil {
		return nil, false
	}
	return lookup.Lookup(id)
}

// Clear deletes every stored entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM recents"); err != nil {
		return fmt.Errorf("recents: clear: %w", err)
	}
	_ = s.Telemetry.Emit(telemetry.Event{Kind: telemetry.KindRecentsCleared})
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("recents: close: %w", err)
	}
	return nil
}
