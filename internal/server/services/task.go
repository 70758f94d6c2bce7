package services

import (
	"context"
	"database/sql"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/server/models"
	"github.com/dmitrijs2005/gophtodo/internal/server/repositories/repomanager"
)

// TaskService implements task CRUD scoped to a single owner.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func (s *TaskService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.repomanager.Tasks(s.db).ListByUser(ctx, userID)
}

func (s *TaskService) Create(ctx context.Context, userID int64, text string) (*models.Task, error) {
	if err := validateTaskText(text); err != nil {
		return nil, err
	}
	return s.repomanager.Tasks(s.db).Create(ctx, &models.Task{UserID: userID, Text: text})
}

// Update changes only the fields present in upd. An empty update returns the
// stored task untouched.
func (s *TaskService) Update(ctx context.Context, userID, id int64, upd models.TaskUpdate) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	if upd.IsEmpty() {
		return repo.GetByIDForUser(ctx, id, userID)
	}
	if upd.Text != nil {
		if err := validateTaskText(*upd.Text); err != nil {
			return nil, err
		}
	}
	return repo.Update(ctx, id, userID, upd)
}

func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	return s.repomanager.Tasks(s.db).Delete(ctx, id, userID)
}

func validateTaskText(text string) error {
	n := utf8.RuneCountInString(text)
	if n < 1 || n > common.MaxTaskLength {
		return fmt.Errorf("%w: task must be between 1 and %d characters", common.ErrorValidation, common.MaxTaskLength)
	}
	return nil
}
