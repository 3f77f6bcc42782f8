package repository

import (
	"context"
	"sync"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/infrastructure/logger"
	"github.com/creativepulse/core/internal/ports"
)

// TaskStore owns the canonical in-memory task collection. Every
// mutation triggers a snapshot save through the configured
// SnapshotStore; save failures are logged and swallowed, so a crash
// between mutation and save loses at most the last change. Reads hand
// out deep copies; the only way stored state changes is through the
// mutation methods.
type TaskStore struct {
	mu        sync.RWMutex
	tasks     []*entities.Task
	snapshots ports.SnapshotStore
	logger    *logger.Logger
}

// NewTaskStore loads the collection from the snapshot store. A missing
// or corrupt snapshot falls back to the seed dataset; startup never
// fails on persistence problems.
func NewTaskStore(ctx context.Context, snapshots ports.SnapshotStore, appLogger *logger.Logger) *TaskStore {
	store := &TaskStore{
		snapshots: snapshots,
		logger:    appLogger,
	}

	tasks, err := snapshots.Load(ctx)
	if err != nil {
		appLogger.Warn("Failed to load task snapshot, seeding defaults", "error", err)
		tasks = entities.SeedTasks()
	}
	store.tasks = tasks

	appLogger.Info("Task store initialized", "tasks", len(tasks))

	return store
}

// Create appends a new task to the collection.
func (s *TaskStore) Create(ctx context.Context, task *entities.Task) error {
	s.mu.Lock()
	for _, t := range s.tasks {
		if t.ID == task.ID {
			s.mu.Unlock()
			return entities.ErrTaskExists
		}
	}
	s.tasks = append(s.tasks, task.Clone())
	s.mu.Unlock()

	s.flush(ctx)
	return nil
}

// GetByID returns a copy of the task with the given id.
func (s *TaskStore) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return nil, entities.ErrTaskNotFound
}

// Update replaces the stored task with the same id.
func (s *TaskStore) Update(ctx context.Context, task *entities.Task) error {
	s.mu.Lock()
	found := false
	for i, t := range s.tasks {
		if t.ID == task.ID {
			s.tasks[i] = task.Clone()
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return entities.ErrTaskNotFound
	}

	s.flush(ctx)
	return nil
}

// Delete permanently removes the task. Hard delete, no tombstone.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	found := false
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return entities.ErrTaskNotFound
	}

	s.flush(ctx)
	return nil
}

// List returns a copy of the whole collection in insertion order.
func (s *TaskStore) List(ctx context.Context) ([]*entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out, nil
}

// Count returns the collection size.
func (s *TaskStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks), nil
}

// flush writes the full collection to the snapshot store. Failures are
// logged, never surfaced: durable-save is fire-and-forget.
func (s *TaskStore) flush(ctx context.Context) {
	s.mu.RLock()
	snapshot := make([]*entities.Task, len(s.tasks))
	for i, t := range s.tasks {
		snapshot[i] = t.Clone()
	}
	s.mu.RUnlock()

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		s.logger.Warn("Failed to save task snapshot", "error", err, "tasks", len(snapshot))
	}
}
