package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/infrastructure/logger"
	"github.com/creativepulse/core/internal/ports"
)

// brokenSnapshotStore fails every operation, for exercising the
// fallback paths.
type brokenSnapshotStore struct{}

func (brokenSnapshotStore) Load(ctx context.Context) ([]*entities.Task, error) {
	return nil, &ports.ErrNoSnapshot{Reason: "boom"}
}

func (brokenSnapshotStore) Save(ctx context.Context, tasks []*entities.Task) error {
	return errors.New("disk full")
}

func (brokenSnapshotStore) Close() error { return nil }

func newFileStore(t *testing.T) (*TaskStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewTaskStore(context.Background(), NewFileSnapshotStore(path), logger.NewNop())
	return store, path
}

func TestNewTaskStoreSeedsWhenSnapshotMissing(t *testing.T) {
	store, _ := newFileStore(t)

	tasks, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, len(entities.SeedTasks()))
}

func TestNewTaskStoreSeedsWhenSnapshotBroken(t *testing.T) {
	store := NewTaskStore(context.Background(), brokenSnapshotStore{}, logger.NewNop())

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(entities.SeedTasks()), count)
}

func TestTaskStorePersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	store, path := newFileStore(t)

	task := &entities.Task{
		ID:       "new",
		Title:    "Podcast Cover",
		Pic:      "Sarah",
		Brand:    "Spotify",
		Campaign: "General",
		Status:   entities.StatusNotStarted,
	}
	require.NoError(t, store.Create(ctx, task))

	// A fresh store over the same file sees the mutation.
	reopened := NewTaskStore(ctx, NewFileSnapshotStore(path), logger.NewNop())
	got, err := reopened.GetByID(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, "Podcast Cover", got.Title)

	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(entities.SeedTasks())+1, count)
}

func TestTaskStoreCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	store, _ := newFileStore(t)

	err := store.Create(ctx, &entities.Task{ID: "1", Title: "dup"})
	assert.ErrorIs(t, err, entities.ErrTaskExists)
}

func TestTaskStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store, _ := newFileStore(t)

	task, err := store.GetByID(ctx, "1")
	require.NoError(t, err)

	task.Title = "Renamed"
	require.NoError(t, store.Update(ctx, task))

	got, err := store.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	err = store.Update(ctx, &entities.Task{ID: "ghost"})
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestTaskStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newFileStore(t)

	require.NoError(t, store.Delete(ctx, "1"))

	_, err := store.GetByID(ctx, "1")
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "1"), entities.ErrTaskNotFound)
}

func TestTaskStoreReadsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store, _ := newFileStore(t)

	task, err := store.GetByID(ctx, "1")
	require.NoError(t, err)

	// Mutating a returned copy must not touch stored state.
	task.Title = "Scribbled over"
	task.Subtasks[0] = "Scribbled over"

	fresh, err := store.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.NotEqual(t, "Scribbled over", fresh.Title)
	assert.NotEqual(t, "Scribbled over", fresh.Subtasks[0])
}

func TestTaskStoreSurvivesSaveFailures(t *testing.T) {
	ctx := context.Background()
	store := NewTaskStore(ctx, brokenSnapshotStore{}, logger.NewNop())

	// Mutations succeed in memory even when persistence is down.
	require.NoError(t, store.Create(ctx, &entities.Task{ID: "fragile", Title: "x"}))

	got, err := store.GetByID(ctx, "fragile")
	require.NoError(t, err)
	assert.Equal(t, "x", got.Title)
}
