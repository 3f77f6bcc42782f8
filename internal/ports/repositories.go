package ports

import (
	"context"

	"github.com/creativepulse/core/internal/domain/entities"
)

// TaskRepository defines the interface for the canonical task
// collection. The collection lives in memory; implementations persist
// it through a SnapshotStore after every mutation.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id string) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Task, error)
	Count(ctx context.Context) (int, error)
}

// SnapshotStore is the durable load/save boundary: one named blob
// holding the whole JSON-serialized collection, read once at startup
// and overwritten wholesale on every save. Implementations must treat
// a missing or corrupt blob as "no snapshot", not as a fatal error.
type SnapshotStore interface {
	Load(ctx context.Context) ([]*entities.Task, error)
	Save(ctx context.Context, tasks []*entities.Task) error
	Close() error
}

// ErrNoSnapshot is returned by SnapshotStore.Load when no usable blob
// exists; callers fall back to the seed dataset.
type ErrNoSnapshot struct {
	Reason string
}

func (e *ErrNoSnapshot) Error() string {
	return "no usable snapshot: " + e.Reason
}

// UserRepository defines the interface for the static roster.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByName(ctx context.Context, name string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
}
