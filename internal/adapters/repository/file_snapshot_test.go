package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/ports"
)

func TestFileSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewFileSnapshotStore(path)
	ctx := context.Background()

	started := time.Date(2025, time.November, 18, 10, 0, 0, 0, time.UTC)
	ended := started.Add(95 * time.Minute)
	tasks := []*entities.Task{
		{
			ID:              "t1",
			Title:           "Key Visual",
			Pic:             "Rashid",
			Brand:           "Samsung",
			Campaign:        "Brand Awareness",
			Status:          entities.StatusWaitingReview,
			StartDate:       entities.NewDate(2025, time.November, 10),
			EndDate:         entities.NewDate(2025, time.November, 20),
			Subtasks:        []string{"Concept", "Render"},
			References:      []entities.Reference{{ID: "r1", Type: entities.ProofTypeLink, Name: "Specs", URL: "#"}},
			ActualStartTime: &started,
			ActualEndTime:   &ended,
			ResumedAt:       &started,
			DurationMinutes: 95,
			ProofType:       entities.ProofTypeLink,
			ProofOfWork:     "https://drive.example.com/kv",
		},
	}

	require.NoError(t, store.Save(ctx, tasks))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, tasks[0], loaded[0])
}

func TestFileSnapshotMissing(t *testing.T) {
	store := NewFileSnapshotStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := store.Load(context.Background())
	var noSnap *ports.ErrNoSnapshot
	assert.True(t, errors.As(err, &noSnap))
}

func TestFileSnapshotCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileSnapshotStore(path)
	_, err := store.Load(context.Background())
	var noSnap *ports.ErrNoSnapshot
	assert.True(t, errors.As(err, &noSnap))
}

func TestFileSnapshotCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "tasks.json")
	store := NewFileSnapshotStore(path)

	require.NoError(t, store.Save(context.Background(), []*entities.Task{}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileSnapshotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewFileSnapshotStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []*entities.Task{{ID: "a", Status: entities.StatusNotStarted}}))
	require.NoError(t, store.Save(ctx, []*entities.Task{{ID: "b", Status: entities.StatusNotStarted}}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].ID)
}
