package services

import (
	"context"
	"time"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/infrastructure/logger"
)

// fakeTaskRepo is an in-memory TaskRepository for service tests. Like
// the real store it hands out deep copies, so a failed transition can
// never leak partial writes back into stored state.
type fakeTaskRepo struct {
	tasks map[string]*entities.Task
}

func newFakeTaskRepo(tasks ...*entities.Task) *fakeTaskRepo {
	r := &fakeTaskRepo{tasks: make(map[string]*entities.Task)}
	for _, t := range tasks {
		r.tasks[t.ID] = t.Clone()
	}
	return r
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entities.Task) error {
	if _, ok := r.tasks[task.ID]; ok {
		return entities.ErrTaskExists
	}
	r.tasks[task.ID] = task.Clone()
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	return t.Clone(), nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *entities.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return entities.ErrTaskNotFound
	}
	r.tasks[task.ID] = task.Clone()
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return entities.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) List(ctx context.Context) ([]*entities.Task, error) {
	out := make([]*entities.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (r *fakeTaskRepo) Count(ctx context.Context) (int, error) {
	return len(r.tasks), nil
}

// stored returns the repo's current copy of a task, for asserting that
// failed operations left it untouched.
func (r *fakeTaskRepo) stored(id string) *entities.Task {
	return r.tasks[id].Clone()
}

var (
	testAdmin  = &entities.User{ID: "admin1", Name: "Jane Doe", Role: entities.RoleAdmin}
	testVito   = &entities.User{ID: "u1", Name: "Vito", Role: entities.RoleMember}
	testRashid = &entities.User{ID: "u2", Name: "Rashid", Role: entities.RoleMember}
)

// fakeUserRepo serves a fixed roster, mirroring the static repository
// without pulling the adapter package into service tests.
type fakeUserRepo struct {
	users []*entities.User
}

func newStaticRoster() *fakeUserRepo {
	return &fakeUserRepo{users: []*entities.User{
		testAdmin,
		testVito,
		testRashid,
		{ID: "u3", Name: "Rafael", Role: entities.RoleMember},
		{ID: "u4", Name: "Sarah", Role: entities.RoleMember},
	}}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) GetByName(ctx context.Context, name string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entities.User, error) {
	return r.users, nil
}

func nopLogger() *logger.Logger {
	return logger.NewNop()
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
