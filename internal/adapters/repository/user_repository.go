package repository

import (
	"context"
	"fmt"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/ports"
)

// StaticUserRepository serves the fixed team roster. There is no user
// CRUD in this system; identity is a lookup against this list.
type StaticUserRepository struct {
	users []*entities.User
}

// NewStaticUserRepository creates a roster repository from the given
// users, defaulting to the seed roster when none are supplied.
func NewStaticUserRepository(users []*entities.User) ports.UserRepository {
	if len(users) == 0 {
		users = entities.SeedUsers()
	}
	return &StaticUserRepository{users: users}
}

// GetByID finds a roster entry by id.
func (r *StaticUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: id %q", entities.ErrUserNotFound, id)
}

// GetByName finds a roster entry by display name.
func (r *StaticUserRepository) GetByName(ctx context.Context, name string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: name %q", entities.ErrUserNotFound, name)
}

// List returns the full roster.
func (r *StaticUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	out := make([]*entities.User, len(r.users))
	for i, u := range r.users {
		copied := *u
		out[i] = &copied
	}
	return out, nil
}
