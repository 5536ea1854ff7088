package character

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"charform/internal/config"
	"charform/internal/form"
	"charform/internal/logger"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("character: unknown backend")

// Backend is a Creator that owns resources.
type Backend interface {
	Creator
	Close() error
}

// Lister is implemented by backends that keep created characters.
type Lister interface {
	List(ctx context.Context) ([]Stored, error)
}

// Open builds the backend named by cfg.Backend
func Open(ctx context.Context, cfg config.Config) (Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendSQLite:
		store, err := OpenStore(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendHTTP:
		return NewHTTPCreator(cfg.APIURL, &http.Client{}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// WithTimeout bounds every Create call by d. A zero duration leaves calls
// unbounded.
func WithTimeout(c Creator, d time.Duration) Creator {
	if d <= 0 {
		return c
	}
	return CreatorFunc(func(ctx context.Context, rec form.Record) error {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		err := c.Create(ctx, rec)
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("request timed out after %s: %w", d, err)
		}
		return err
	})
}

// Logged records every Create call in the submissions log.
func Logged(c Creator) Creator {
	return CreatorFunc(func(ctx context.Context, rec form.Record) error {
		logger.Submission("create", rec)
		start := time.Now()
		err := c.Create(ctx, rec)
		if err != nil {
			logger.Error("create character %q failed after %s: %v", rec["name"], time.Since(start), err)
			logger.Submission("failed", err.Error())
			return err
		}
		logger.Info("created character %q in %s", rec["name"], time.Since(start))
		logger.Submission("created", rec["name"])
		return nil
	})
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(ctx context.Context, rec form.Record) error

func (fn CreatorFunc) Create(ctx context.Context, rec form.Record) error {
	return fn(ctx, rec)
}
