// Package storemanager selects and wires the storage backend for the
// process: it vends the user store, the preference store, and the dataset
// source, and owns the lifecycle of the underlying handle (database pool,
// object-store client, or data directory).
//
// The manager is constructed once at startup and injected into services —
// never re-created per request.
package storemanager

import (
	"context"
	"fmt"

	"github.com/kanishkgoel/gridboard/internal/server/config"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/dataset"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/prefs"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/users"
)

// Manager vends the repositories for one configured backend.
type Manager interface {
	Users() users.Repository
	Prefs() prefs.Repository
	Dataset() dataset.Source
	Close() error
}

// New builds the Manager named by cfg.Backend.
func New(ctx context.Context, cfg *config.Config) (Manager, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return NewFileManager(cfg)
	case config.BackendS3:
		return NewS3Manager(ctx, cfg)
	case config.BackendPostgres:
		return NewPostgresManager(ctx, cfg)
	case config.BackendMemory:
		return NewMemoryManager(cfg)
	default:
		return nil, fmt.Errorf("unknown backend: %q", cfg.Backend)
	}
}
