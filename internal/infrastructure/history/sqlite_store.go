package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/pkg/filesystem"
	"github.com/amantham20/aqs-go/internal/ports"
)

// SQLiteStore persists completed searches in a SQLite database.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fallback *FileStore
	mu       sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.aqs/history/aqs.db database.
// When the database cannot be opened the store degrades to the JSONL file
// store so bookkeeping keeps working.
func NewSQLiteStore() *SQLiteStore {
	path := filepath.Join(filesystem.UserHomeDir(), ".aqs", "history", "aqs.db")
	return newSQLiteStoreAt(path)
}

func newSQLiteStoreAt(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path, fallback: newFileStoreAt(jsonlPath(path))}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		db.Close()
		return &SQLiteStore{path: path, fallback: newFileStoreAt(jsonlPath(path))}
	}
	return store
}

func jsonlPath(dbPath string) string {
	return strings.TrimSuffix(dbPath, filepath.Ext(dbPath)) + ".jsonl"
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS searches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		query TEXT,
		command TEXT,
		executed INTEGER,
		exit_code INTEGER,
		dry_run INTEGER,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.UsageRecord) error {
	if s.db == nil {
		return s.fallback.Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO searches
		(timestamp, query, command, executed, exit_code, dry_run, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Query,
		record.Command,
		boolToInt(record.Executed),
		record.ExitCode,
		boolToInt(record.DryRun),
		record.DurationMS,
	)
	return err
}

// Records returns usage entries newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.UsageRecord, error) {
	if s.db == nil {
		return s.fallback.Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, query, command, executed, exit_code, dry_run, duration_ms FROM searches")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE query LIKE ? OR command LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.UsageRecord
	for rows.Next() {
		var rec domain.UsageRecord
		var ts string
		var executed, dryRun int
		if err := rows.Scan(&ts, &rec.Query, &rec.Command, &executed, &rec.ExitCode, &dryRun, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Executed = executed == 1
		rec.DryRun = dryRun == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all usage entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback.Clear()
	}
	_, err := s.db.Exec("DELETE FROM searches")
	return err
}

// ExportJSON writes the searches table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
		if rec.Timestamp.IsZero() {
			rec.Timestamp = time.Now()
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// PruneOlderThan deletes entries older than the given number of days and
// reports how many were removed.
func (s *SQLiteStore) PruneOlderThan(days int) (int, error) {
	if s.db == nil {
		return s.fallback.PruneOlderThan(days)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().AddDate(0, 0, -days).UTC().Format("2006-01-02 15:04:05")
	res, err := s.db.Exec("DELETE FROM searches WHERE datetime(timestamp) < datetime(?)", cutoff)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	return int(affected), err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	if s.db == nil {
		return s.fallback.Path()
	}
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.UsageRecorder = (*SQLiteStore)(nil)
