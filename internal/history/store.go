package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"gibberlink/internal/transport"
	"gibberlink/internal/txcodec"
)

var now = time.Now

// timeLayout pads fractional seconds to a fixed width so the lexicographic
// order of stored timestamps matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one recorded codec invocation.
type Entry struct {
	ID        string
	CreatedAt time.Time
	Mode      string
	Protocol  string
	Volume    int
	Path      string
	Result    string
	Message   string
}

// Store manages invocation history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	mode TEXT NOT NULL,
	protocol TEXT NOT NULL,
	volume INTEGER NOT NULL,
	path TEXT NOT NULL,
	result TEXT NOT NULL,
	message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_invocations_created_at ON invocations(created_at DESC);
`

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Record persists one completed invocation and returns the stored entry.
func (s *Store) Record(ctx context.Context, req transport.Request, outcome txcodec.Outcome) (Entry, error) {
	entry := Entry{
		ID:        uuid.NewString(),
		CreatedAt: now().UTC(),
		Mode:      req.Mode.String(),
		Volume:    req.Volume,
		Result:    string(outcome.Kind),
		Message:   outcome.Message(),
	}
	if req.Mode == transport.ModeDecode {
		entry.Path = req.DecodeInputPath
	} else {
		entry.Protocol = req.Protocol.Token()
		entry.Path = req.OutputPath
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations (id, created_at, mode, protocol, volume, path, result, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.CreatedAt.Format(timeLayout), entry.Mode, entry.Protocol,
		entry.Volume, entry.Path, entry.Result, entry.Message,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("record invocation: %w", err)
	}
	return entry, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, mode, protocol, volume, path, result, message
		 FROM invocations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var createdAt string
		if err := rows.Scan(&entry.ID, &createdAt, &entry.Mode, &entry.Protocol,
			&entry.Volume, &entry.Path, &entry.Result, &entry.Message); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if parsed, parseErr := time.Parse(timeLayout, createdAt); parseErr == nil {
			entry.CreatedAt = parsed
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
