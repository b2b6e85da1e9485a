// Package jsonl implements the default memok store: one JSON object per
// line in contacts.jsonl and notes.jsonl inside the data directory.
package jsonl

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/memok/pkg/types"
)

// File names inside the data directory.
const (
	ContactsFile = "contacts.jsonl"
	NotesFile    = "notes.jsonl"
)

// Backend implements types.Store over JSONL files. Every save rewrites the
// whole file atomically.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	dataDir  string
	logger   *zap.Logger
}

var _ types.Store = (*Backend)(nil)

// NewBackend creates a detached backend. A nil logger discards output.
func NewBackend(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{logger: logger.Named("jsonl")}
}

// Attach creates the data directory if needed.
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

	b.dataDir = dataDir
	b.attached = true
	b.logger.Debug("attached", zap.String("data_dir", dataDir))
	return nil
}

// Detach marks the backend detached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attached = false
	return nil
}

// LoadContacts reads contacts.jsonl.
func (b *Backend) LoadContacts() ([]*types.Record, error) {
	path, err := b.path(ContactsFile)
	if err != nil {
		return nil, err
	}
	lines, err := readJSONL(path)
	if err != nil {
		return nil, err
	}
	records, err := decodeAll[types.Record]("contact", lines)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("contacts loaded", zap.Int("count", len(records)))
	return records, nil
}

// SaveContacts replaces contacts.jsonl.
func (b *Backend) SaveContacts(records []*types.Record) error {
	path, err := b.path(ContactsFile)
	if err != nil {
		return err
	}
	lines, err := encodeAll(records)
	if err != nil {
		return err
	}
	if err := writeJSONL(path, lines); err != nil {
		return err
	}
	b.logger.Debug("contacts saved", zap.Int("count", len(records)))
	return nil
}

// LoadNotes reads notes.jsonl.
func (b *Backend) LoadNotes() ([]*types.Note, error) {
	path, err := b.path(NotesFile)
	if err != nil {
		return nil, err
	}
	lines, err := readJSONL(path)
	if err != nil {
		return nil, err
	}
	notes, err := decodeAll[types.Note]("note", lines)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("notes loaded", zap.Int("count", len(notes)))
	return notes, nil
}

// SaveNotes replaces notes.jsonl.
func (b *Backend) SaveNotes(notes []*types.Note) error {
	path, err := b.path(NotesFile)
	if err != nil {
		return err
	}
	lines, err := encodeAll(notes)
	if err != nil {
		return err
	}
	if err := writeJSONL(path, lines); err != nil {
		return err
	}
	b.logger.Debug("notes saved", zap.Int("count", len(notes)))
	return nil
}

func (b *Backend) path(name string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return "", types.ErrStoreDetached
	}
	return filepath.Join(b.dataDir, name), nil
}
