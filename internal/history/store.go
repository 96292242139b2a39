// Package history records per-file processing outcomes in a local SQLite
// database, keyed by content hash. Cloud OCR bills per page, so a batch run
// consults the store first and skips files whose content already reached a
// terminal outcome in an earlier run.
package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/chuntim/receipt-renamer/constants"
	"github.com/chuntim/receipt-renamer/internal/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	root        TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT,
	total       INTEGER NOT NULL DEFAULT 0,
	succeeded   INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS files (
	hash          TEXT NOT NULL,
	run_id        TEXT NOT NULL REFERENCES runs(id),
	original_file TEXT NOT NULL,
	status        TEXT NOT NULL,
	customer_name TEXT,
	new_filename  TEXT,
	processed_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS files_hash_idx ON files(hash);
`

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if necessary) the history database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	logger.Debug("history store opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records the start of a batch run.
func (s *Store) BeginRun(id uuid.UUID, root string) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, root, started_at) VALUES (?, ?, ?)`,
		id.String(), root, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	return nil
}

// FinishRun stamps the run with its end time and summary counts.
func (s *Store) FinishRun(id uuid.UUID, sum report.Summary) error {
	_, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, total = ?, succeeded = ? WHERE id = ?`,
		time.Now().Format(time.RFC3339), sum.Total, sum.Success+sum.SuccessManual, id.String())
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// Record stores one file outcome under the given run.
func (s *Store) Record(runID uuid.UUID, hash string, res report.ProcessResult) error {
	_, err := s.db.Exec(
		`INSERT INTO files (hash, run_id, original_file, status, customer_name, new_filename, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		hash, runID.String(), res.OriginalFile, string(res.Status),
		res.CustomerName, res.NewFilename, res.Timestamp)
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// ShouldSkip reports whether this content hash already has a terminal
// outcome. Non-terminal statuses (errors, rename failures) stay retryable.
func (s *Store) ShouldSkip(hash string) (bool, error) {
	rows, err := s.db.Query(`SELECT status FROM files WHERE hash = ?`, hash)
	if err != nil {
		return false, fmt.Errorf("query history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return false, err
		}
		if constants.Status(status).Terminal() {
			return true, nil
		}
	}
	return false, rows.Err()
}

// HashFile returns the lowercase hex sha256 of a file's content.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
