package services

import (
	"context"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/ports"
)

// RosterService exposes the static team roster. Users are never
// created or destroyed at runtime.
type RosterService struct {
	userRepo ports.UserRepository
}

// NewRosterService creates a new roster service
func NewRosterService(userRepo ports.UserRepository) *RosterService {
	return &RosterService{userRepo: userRepo}
}

// GetUser resolves a roster entry by id.
func (s *RosterService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns the full roster.
func (s *RosterService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

// MemberNames returns the names of all non-admin members, the PICs the
// per-member dashboard rollup reports on.
func (s *RosterService) MemberNames(ctx context.Context) ([]string, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		if !u.IsAdmin() {
			names = append(names, u.Name)
		}
	}
	return names, nil
}
