package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/server/models"
	"github.com/dmitrijs2005/gophtodo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository_CreateAndGet(t *testing.T) {
	repo := NewSQLiteRepository(testutil.NewSQLiteDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.True(t, created.IsActive)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.True(t, got.IsActive)
}

func TestSQLiteRepository_Duplicate(t *testing.T) {
	repo := NewSQLiteRepository(testutil.NewSQLiteDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "a"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: "b"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestSQLiteRepository_NotFound(t *testing.T) {
	repo := NewSQLiteRepository(testutil.NewSQLiteDB(t))

	_, err := repo.GetUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
