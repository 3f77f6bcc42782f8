package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/ports"
)

// PostgresSnapshotStore keeps the task collection as one named jsonb
// row in the task_snapshots table. The row is upserted wholesale on
// every save, matching the single-blob persistence model.
type PostgresSnapshotStore struct {
	db   *sqlx.DB
	name string
}

// NewPostgresSnapshotStore creates a Postgres-backed snapshot store.
func NewPostgresSnapshotStore(db *sqlx.DB, name string) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{db: db, name: name}
}

// Load reads the named snapshot row. A missing row or undecodable
// payload yields ErrNoSnapshot; connection errors do too, so startup
// can still proceed on seed data.
func (s *PostgresSnapshotStore) Load(ctx context.Context) ([]*entities.Task, error) {
	var data []byte
	query := `SELECT data FROM task_snapshots WHERE name = $1`
	if err := s.db.GetContext(ctx, &data, query, s.name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ports.ErrNoSnapshot{Reason: "snapshot row does not exist"}
		}
		return nil, &ports.ErrNoSnapshot{Reason: err.Error()}
	}

	var tasks []*entities.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &ports.ErrNoSnapshot{Reason: fmt.Sprintf("corrupt snapshot: %v", err)}
	}

	return tasks, nil
}

// Save upserts the full collection into the named row.
func (s *PostgresSnapshotStore) Save(ctx context.Context, tasks []*entities.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	query := `
		INSERT INTO task_snapshots (name, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, s.name, data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool.
func (s *PostgresSnapshotStore) Close() error {
	return s.db.Close()
}
