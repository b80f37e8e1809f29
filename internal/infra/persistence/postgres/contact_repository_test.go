package postgres

import (
	"context"
	"testing"

	"fabquote/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRepository_CreateAndList(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))
	ctx := context.Background()

	path := "public/contact-submissions/1700000000000-brief.pdf"
	first := &entity.ContactSubmission{Name: "Ravi", Email: "ravi@example.com", Message: "Need 500 boards"}
	second := &entity.ContactSubmission{Name: "Meera", Email: "meera@example.com", Message: "Assembly quote", FilePath: &path}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	all, err := repo.FindAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	limited, err := repo.FindAll(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
