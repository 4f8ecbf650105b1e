// Package sqlitelog persists run log lines to a local sqlite file so
// past runs stay inspectable after the process exits.
package sqlitelog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS run_log (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id  TEXT NOT NULL,
	at      TEXT NOT NULL,
	message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS run_log_run_id ON run_log (run_id);
`

// Sink appends log lines for one run. Append never reports errors;
// failed inserts are dropped to keep the run's success path clean.
type Sink struct {
	db    *sql.DB
	runID string
	now   func() time.Time
}

// Open creates or opens the log database at path and prepares the
// schema. runID tags every line written through the returned sink.
func Open(ctx context.Context, path, runID string) (*Sink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitelog: open %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlitelog: init schema: %w", err)
	}
	return &Sink{db: db, runID: runID, now: time.Now}, nil
}

func (s *Sink) Append(message string) {
	_, _ = s.db.Exec(
		"INSERT INTO run_log (run_id, at, message) VALUES (?, ?, ?)",
		s.runID, s.now().UTC().Format(time.RFC3339), message,
	)
}

// Lines returns the messages recorded for the sink's run in insertion
// order.
func (s *Sink) Lines(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT message FROM run_log WHERE run_id = ? ORDER BY id", s.runID)
	if err != nil {
		return nil, fmt.Errorf("sqlitelog: query: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("sqlitelog: scan: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Sink) Close() error {
	return s.db.Close()
}
