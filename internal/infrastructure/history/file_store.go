package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/amantham20/aqs-go/internal/domain"
	"github.com/amantham20/aqs-go/internal/pkg/filesystem"
	"github.com/amantham20/aqs-go/internal/ports"
)

// FileStore appends usage records to a jsonl file. It backs the SQLite store
// when the database cannot be opened.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a usage store under ~/.aqs/history/aqs.jsonl.
func NewFileStore() *FileStore {
	return newFileStoreAt(filepath.Join(filesystem.UserHomeDir(), ".aqs", "history", "aqs.jsonl"))
}

func newFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Save implements ports.UsageRecorder.
func (f *FileStore) Save(record domain.UsageRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.SharedFilePermissions)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Records returns usage entries newest first (limit/search optional).
func (f *FileStore) Records(limit int, search string) ([]domain.UsageRecord, error) {
	all, err := f.load()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(search)
	var records []domain.UsageRecord
	for i := len(all) - 1; i >= 0; i-- {
		rec := all[i]
		if needle != "" &&
			!strings.Contains(strings.ToLower(rec.Query), needle) &&
			!strings.Contains(strings.ToLower(rec.Command), needle) {
			continue
		}
		records = append(records, rec)
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records, nil
}

// Clear removes the usage file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ExportJSON copies all records to a jsonl file at dest.
func (f *FileStore) ExportJSON(dest string) error {
	records, err := f.Records(0, "")
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
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

// PruneOlderThan rewrites the file keeping only entries newer than the
// cutoff and reports how many were dropped.
func (f *FileStore) PruneOlderThan(days int) (int, error) {
	all, err := f.load()
	if err != nil {
		return 0, err
	}
	if len(all) == 0 {
		return 0, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	cutoff := time.Now().AddDate(0, 0, -days)
	var kept []domain.UsageRecord
	for _, rec := range all {
		if rec.Timestamp.After(cutoff) {
			kept = append(kept, rec)
		}
	}
	removed := len(all) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	for _, rec := range kept {
		b, err := json.Marshal(rec)
		if err != nil {
			return 0, err
		}
		buf.Write(b)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(f.path, buf.Bytes(), domain.SharedFilePermissions); err != nil {
		return 0, err
	}
	return removed, nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// load reads every record oldest first (best-effort, bad lines skipped).
func (f *FileStore) load() ([]domain.UsageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.UsageRecord
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var rec domain.UsageRecord
		if err := json.Unmarshal(line, &rec); err == nil {
			records = append(records, rec)
		}
	}
	return records, nil
}

var _ ports.UsageRecorder = (*FileStore)(nil)
