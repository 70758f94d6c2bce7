package tasks

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/server/models"
	"github.com/dmitrijs2005/gophtodo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`INSERT INTO users (username, hashed_password) VALUES (?, 'x') RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestSQLiteRepository_Lifecycle(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")

	first, err := repo.Create(ctx, &models.Task{UserID: alice, Text: "buy milk"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &models.Task{UserID: alice, Text: "walk dog"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	list, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)

	done := true
	updated, err := repo.Update(ctx, first.ID, alice, models.TaskUpdate{Completed: &done})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", updated.Text)
	assert.True(t, updated.Completed)

	text := "buy oat milk"
	updated, err = repo.Update(ctx, first.ID, alice, models.TaskUpdate{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", updated.Text)
	assert.True(t, updated.Completed)

	got, err := repo.GetByIDForUser(ctx, first.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, repo.Delete(ctx, first.ID, alice))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID, alice), common.ErrorNotFound)

	list, err = repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSQLiteRepository_OwnershipIsolation(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	task, err := repo.Create(ctx, &models.Task{UserID: alice, Text: "secret"})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, bob)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = repo.GetByIDForUser(ctx, task.ID, bob)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	done := true
	_, err = repo.Update(ctx, task.ID, bob, models.TaskUpdate{Completed: &done})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, task.ID, bob), common.ErrorNotFound)

	got, err := repo.GetByIDForUser(ctx, task.ID, alice)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestSQLiteRepository_UnknownUserViolatesForeignKey(t *testing.T) {
	repo := NewSQLiteRepository(testutil.NewSQLiteDB(t))

	_, err := repo.Create(context.Background(), &models.Task{UserID: 999, Text: "orphan"})
	assert.Error(t, err)
}
