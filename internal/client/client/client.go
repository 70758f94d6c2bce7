package client

import (
	"context"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

// Client is the API surface the CLI needs.
type Client interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout()
	IsLoggedIn() bool

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, text string) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, upd TaskUpdate) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// TaskUpdate is a partial update; nil fields are not sent.
type TaskUpdate struct {
	Task      *string `json:"task,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}
