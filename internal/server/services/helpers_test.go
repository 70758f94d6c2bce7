package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/dbx"
	"github.com/dmitrijs2005/gophtodo/internal/server/config"
	"github.com/dmitrijs2005/gophtodo/internal/server/models"
	"github.com/dmitrijs2005/gophtodo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophtodo/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gophtodo/internal/server/repositories/users"
	"github.com/dmitrijs2005/gophtodo/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.BcryptCost = bcrypt.MinCost
	cfg.AccessTokenValidityDuration = time.Minute
	cfg.RefreshTokenValidityDuration = time.Hour
	return cfg
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newUserService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	t.Helper()
	s, err := NewUserService(db, rm, testConfig())
	if err != nil {
		t.Fatalf("NewUserService error: %v", err)
	}
	return s
}

// newSQLiteServices wires both services to a fresh in-memory database.
func newSQLiteServices(t *testing.T) (*UserService, *TaskService) {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	rm := repomanager.NewSQLiteRepositoryManager()
	return newUserService(t, db, rm), NewTaskService(db, rm)
}

type fakeUsersRepo struct {
	users     map[string]*models.User
	getErr    error
	createErr error
	nextID    int64
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	u.ID = f.nextID
	u.IsActive = true
	f.users[u.UserName] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeTasksRepo struct {
	updateCalls int
	getCalls    int
	task        *models.Task
	err         error
}

func (f *fakeTasksRepo) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	return []models.Task{}, f.err
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	task.ID = 1
	return task, nil
}

func (f *fakeTasksRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*models.Task, error) {
	f.getCalls++
	return f.task, f.err
}

func (f *fakeTasksRepo) Update(ctx context.Context, id, userID int64, upd models.TaskUpdate) (*models.Task, error) {
	f.updateCalls++
	return f.task, f.err
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id, userID int64) error {
	return f.err
}

type fakeRepoManager struct {
	users users.Repository
	tasks tasks.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository { return m.users }
func (m *fakeRepoManager) Tasks(dbx.DBTX) tasks.Repository { return m.tasks }
