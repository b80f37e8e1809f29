package postgres

import (
	"context"
	"testing"

	"fabquote/internal/domain/entity"
	"fabquote/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_CreateIfAbsent(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.CreateIfAbsent(ctx, &entity.Profile{ID: id, FullName: "Asha"}))
	require.NoError(t, repo.CreateIfAbsent(ctx, &entity.Profile{ID: id, FullName: "Someone Else"}))

	profile, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.FullName)
	assert.Equal(t, entity.ProfileStatusUnverified, profile.Status)
}

func TestProfileRepository_MarkVerifiedOnce(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.CreateIfAbsent(ctx, &entity.Profile{ID: id}))

	flipped, err := repo.MarkVerified(ctx, id)
	require.NoError(t, err)
	assert.True(t, flipped)

	flipped, err = repo.MarkVerified(ctx, id)
	require.NoError(t, err)
	assert.False(t, flipped)

	profile, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, profile.IsVerified())

	_, err = repo.MarkVerified(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_UpdateDetails(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.CreateIfAbsent(ctx, &entity.Profile{ID: id}))
	require.NoError(t, repo.UpdateDetails(ctx, id, "Asha Rao", "+919876543210"))

	profile, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", profile.FullName)
	assert.Equal(t, "+919876543210", profile.Phone)
	assert.Equal(t, entity.ProfileStatusUnverified, profile.Status)

	err = repo.UpdateDetails(ctx, uuid.New(), "x", "")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}
