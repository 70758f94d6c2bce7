// Package tasks persists to-do items. Every lookup and mutation is scoped to
// the owning user, so a task that belongs to someone else is reported as
// common.ErrorNotFound exactly like one that does not exist.
package tasks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*models.Task, error)
	Update(ctx context.Context, id, userID int64, upd models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id, userID int64) error
}

func scanTasks(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]models.Task, error) {
	result := make([]models.Task, 0)
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(&item.ID, &item.UserID, &item.Text, &item.Completed); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func rowsAffectedOrNotFound(n int64) error {
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullBool(p *bool) sql.NullBool {
	if p == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *p, Valid: true}
}
