// Package sqlite implements the memok store on an embedded SQLite database
// (memok.db in the data directory). Saves replace a whole collection inside
// one transaction; loads rebuild every entity through the types
// constructors.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/memok/pkg/types"
)

// DatabaseFile is the database name inside the data directory.
const DatabaseFile = "memok.db"

// Backend implements types.Store using SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *zap.Logger
}

var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to open the database. A nil logger
// discards output.
func NewBackend(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{logger: logger.Named("sqlite")}
}

// Attach opens (or creates) memok.db in DataDir and ensures the schema.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	// One connection keeps transactions and schema on the same handle.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	b.logger.Debug("attached", zap.String("path", dbPath))
	return nil
}

// Detach closes the database. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// handle returns the open database or ErrStoreDetached.
// The caller must hold b.mu.
func (b *Backend) handle() (*sql.DB, error) {
	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.db, nil
}

// withTx runs fn inside a transaction, committing on success.
func withTx(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
