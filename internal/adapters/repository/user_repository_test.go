package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativepulse/core/internal/domain/entities"
)

func TestStaticUserRepositoryDefaultsToSeed(t *testing.T) {
	repo := NewStaticUserRepository(nil)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestStaticUserRepositoryLookups(t *testing.T) {
	repo := NewStaticUserRepository(nil)
	ctx := context.Background()

	byID, err := repo.GetByID(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", byID.Name)
	assert.True(t, byID.IsAdmin())

	byName, err := repo.GetByName(ctx, "Vito")
	require.NoError(t, err)
	assert.Equal(t, "u1", byName.ID)

	_, err = repo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	_, err = repo.GetByName(ctx, "Nobody")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestStaticUserRepositoryReturnsCopies(t *testing.T) {
	repo := NewStaticUserRepository(nil)
	ctx := context.Background()

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	u.Name = "Mallory"

	fresh, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Vito", fresh.Name)
}
