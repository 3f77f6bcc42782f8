package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/ports"
)

// FileSnapshotStore persists the task collection as a single JSON file.
// The whole blob is rewritten on every save; there is no incremental
// update and no schema versioning.
type FileSnapshotStore struct {
	path string
}

// NewFileSnapshotStore creates a file-backed snapshot store.
func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path}
}

// Load reads and decodes the snapshot file. A missing or undecodable
// file yields ErrNoSnapshot so the caller can fall back to seed data.
func (s *FileSnapshotStore) Load(ctx context.Context) ([]*entities.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ports.ErrNoSnapshot{Reason: "file does not exist"}
		}
		return nil, &ports.ErrNoSnapshot{Reason: err.Error()}
	}

	var tasks []*entities.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &ports.ErrNoSnapshot{Reason: fmt.Sprintf("corrupt snapshot: %v", err)}
	}

	return tasks, nil
}

// Save overwrites the snapshot file with the full collection. The
// write goes through a temp file and rename so a crash mid-write
// leaves the previous snapshot intact.
func (s *FileSnapshotStore) Save(ctx context.Context, tasks []*entities.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}

// Close is a no-op for the file store.
func (s *FileSnapshotStore) Close() error {
	return nil
}
