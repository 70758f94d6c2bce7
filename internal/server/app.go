// Package server wires configuration, storage, services and the HTTP and
// gRPC servers together, and runs them until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophtodo/internal/dbx"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/dmitrijs2005/gophtodo/internal/server/config"
	"github.com/dmitrijs2005/gophtodo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophtodo/internal/server/rest"
	"github.com/dmitrijs2005/gophtodo/internal/server/services"
	"github.com/dmitrijs2005/gophtodo/internal/telemetry"
	"github.com/dmitrijs2005/gophtodo/internal/timeouts"

	gs "github.com/dmitrijs2005/gophtodo/internal/server/grpc"
)

const serviceName = "gophtodo"

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	userService   *services.UserService
	taskService   *services.TaskService
	traceShutdown func(context.Context) error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, dialect, err := dbx.Open(ctx, c.DatabaseDSN)
	switch {
	case errors.Is(err, dbx.ErrUnreachable):
		logger.Error(ctx, "database unreachable at startup", "error", err, "dialect", string(dialect))
	case err != nil:
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.New(dialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	// a failed migration is reported but does not stop the server
	if err := rm.RunMigrations(ctx, db); err != nil {
		logger.Error(ctx, "schema migration failed", "error", err, "dialect", string(dialect))
	}

	us, err := services.NewUserService(db, rm, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	traceShutdown, err := telemetry.Setup(ctx, serviceName, c.OTLPEndpoint)
	if err != nil {
		logger.Warn(ctx, "tracing disabled", "error", err)
	}

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		repomanager:   rm,
		userService:   us,
		taskService:   services.NewTaskService(db, rm),
		traceShutdown: traceShutdown,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.taskService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.db)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the servers fails, then releases the database and the tracer.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close()
}

func (app *App) close() {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()

	if app.traceShutdown != nil {
		if err := app.traceShutdown(ctx); err != nil {
			app.logger.Error(ctx, "tracer shutdown error", "error", err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
