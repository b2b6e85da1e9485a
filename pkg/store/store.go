// Package store exposes the factory for memok storage backends while
// keeping their implementations internal.
package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/memok/internal/jsonl"
	"github.com/mesh-intelligence/memok/internal/sqlite"
	"github.com/mesh-intelligence/memok/pkg/types"
)

// New returns a detached store for the named backend.
//
// Example:
//
//	s, err := store.New(types.BackendJSONL, logger)
//	err = s.Attach(types.Config{Backend: types.BackendJSONL, DataDir: dir})
//	defer s.Detach()
func New(backend string, logger *zap.Logger) (types.Store, error) {
	switch backend {
	case types.BackendJSONL:
		return jsonl.NewBackend(logger), nil
	case types.BackendSQLite:
		return sqlite.NewBackend(logger), nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%q: %w", backend, types.ErrBackendUnknown)
	}
}

// Open builds the store named by config.Backend and attaches it.
func Open(config types.Config, logger *zap.Logger) (types.Store, error) {
	s, err := New(config.Backend, logger)
	if err != nil {
		return nil, err
	}
	if err := s.Attach(config); err != nil {
		return nil, fmt.Errorf("attaching %s store: %w", config.Backend, err)
	}
	return s, nil
}
