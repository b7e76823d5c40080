package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	_ "modernc.org/sqlite"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

// Record is one persisted analysis: the source that was analyzed, the
// findings it produced and the user it belongs to.
type Record struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Source    string          `json:"source"`
	Findings  []model.Finding `json:"findings"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Store persists analysis history in SQLite. The engine never depends on
// it; a failed save must not alter an analysis result.
type Store struct {
	db  *sql.DB
	log hclog.Logger
}

// Open opens (creating if needed) the history database. An empty path
// defaults to ~/.checkmysmartcontract/history.db.
func Open(path string, log hclog.Logger) (*Store, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home dir: %w", err)
		}
		dir := filepath.Join(home, ".checkmysmartcontract")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		path = filepath.Join(dir, "history.db")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug("history database ready", "path", path)
	return &Store{db: db, log: log.Named("store")}, nil
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		source TEXT NOT NULL,
		findings TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_analyses_user ON analyses(user_id, created_at);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// Save appends one analysis record and returns its id.
func (s *Store) Save(userID, source string, findings []model.Finding) (string, error) {
	id := uuid.NewString()
	findingsJSON, err := json.Marshal(findings)
	if err != nil {
		return "", fmt.Errorf("failed to encode findings: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO analyses (id, user_id, source, findings, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, userID, source, string(findingsJSON), time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert analysis: %w", err)
	}
	s.log.Debug("saved analysis", "id", id, "user", userID, "findings", len(findings))
	return id, nil
}

// ListHistory returns the user's records, newest first. A limit of 0
// means no limit.
func (s *Store) ListHistory(userID string, limit int) ([]Record, error) {
	query := `SELECT id, user_id, source, findings, created_at FROM analyses WHERE user_id = ? ORDER BY created_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var findingsRaw string
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Source, &findingsRaw, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if err := json.Unmarshal([]byte(findingsRaw), &rec.Findings); err != nil {
			s.log.Warn("skipping record with malformed findings", "id", rec.ID, "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
