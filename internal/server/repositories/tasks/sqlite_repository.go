package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/dbx"
	"github.com/dmitrijs2005/gophtodo/internal/server/models"
)

// SQLiteRepository is the SQLite flavour of PostgresRepository.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ListByUser returns the user's tasks ordered by id. An empty list is not nil.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	query := `SELECT id, user_id, task, completed FROM tasks
		WHERE user_id = ?
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *SQLiteRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (user_id, task, completed)
		 VALUES (?, ?, ?)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query, task.UserID, task.Text, task.Completed).Scan(&task.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *SQLiteRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*models.Task, error) {
	query := `SELECT id, user_id, task, completed FROM tasks
		WHERE id = ? AND user_id = ?`

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&task.ID, &task.UserID, &task.Text, &task.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Update applies the non-nil fields of upd and returns the stored row.
func (r *SQLiteRepository) Update(ctx context.Context, id, userID int64, upd models.TaskUpdate) (*models.Task, error) {
	query := `UPDATE tasks
		SET task = COALESCE(?, task),
			completed = COALESCE(?, completed)
		WHERE id = ? AND user_id = ?
		RETURNING id, user_id, task, completed`

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, nullString(upd.Text), nullBool(upd.Completed), id, userID).
		Scan(&task.ID, &task.UserID, &task.Text, &task.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	return rowsAffectedOrNotFound(n)
}
