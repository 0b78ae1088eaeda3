// Package bootstrap provides lifecycle helpers for long-running
// processes such as the sweep daemon.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// shutdownTimeout bounds how long shutdown hooks may take once an
// interrupt arrives.
const shutdownTimeout = 30 * time.Second

// App runs a foreground function and tears registered resources down
// in LIFO order when the process is interrupted.
type App struct {
	logger *zap.Logger

	mu    sync.Mutex
	hooks []func(ctx context.Context) error
}

// New creates a new App.
func New(logger *zap.Logger) *App {
	return &App{logger: logger}
}

// AddShutdownHook registers a function to call during graceful
// shutdown. Hooks run in reverse registration order. Safe for
// concurrent use.
func (a *App) AddShutdownHook(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Run executes the run function under a signal-aware context. On
// SIGINT or SIGTERM the shutdown hooks run with a bounded deadline.
// If run returns before a signal arrives, its error is returned
// directly and no hooks fire.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		return a.shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		if err := a.hooks[i](ctx); err != nil {
			a.logger.Error("shutdown hook failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
