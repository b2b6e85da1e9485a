package memok

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/memok/pkg/types"
)

// ErrReadOnly is returned when saving a collection whose load failed.
// Saving it would replace the stored data with an empty collection.
var ErrReadOnly = errors.New("collection is read-only after a failed load")

// Session owns the contact directory, the notebook and the store they are
// persisted in. The store must be attached before Open.
type Session struct {
	store  types.Store
	logger *zap.Logger
	now    func() time.Time

	directory *Directory
	notebook  *NoteBook

	contactsReadOnly bool
	notesReadOnly    bool
	warnings         []error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithClock sets the function used for Today.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Open loads both collections from store. A collection that fails to load
// starts empty and read-only; the failure is kept in Warnings. Open itself
// never fails on a load error so the other collection stays usable.
func Open(store types.Store, opts ...Option) *Session {
	s := &Session{
		store:  store,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	records, err := store.LoadContacts()
	if err != nil {
		s.degrade("contacts", err)
		s.contactsReadOnly = true
		records = nil
	}
	s.directory = NewDirectory(records...)

	notes, err := store.LoadNotes()
	if err != nil {
		s.degrade("notes", err)
		s.notesReadOnly = true
		notes = nil
	}
	s.notebook = NewNoteBook(notes...)

	s.logger.Debug("session opened",
		zap.Int("contacts", s.directory.Len()),
		zap.Int("notes", s.notebook.Len()))
	return s
}

func (s *Session) degrade(collection string, err error) {
	s.logger.Warn("load failed, collection is read-only",
		zap.String("collection", collection), zap.Error(err))
	s.warnings = append(s.warnings, fmt.Errorf("loading %s: %w", collection, err))
}

// Directory returns the contact directory.
func (s *Session) Directory() *Directory { return s.directory }

// NoteBook returns the notebook.
func (s *Session) NoteBook() *NoteBook { return s.notebook }

// Logger returns the session logger.
func (s *Session) Logger() *zap.Logger { return s.logger }

// Warnings returns the load failures recorded by Open.
func (s *Session) Warnings() []error { return s.warnings }

// Today returns the current calendar date at midnight UTC.
func (s *Session) Today() time.Time { return types.CalendarDate(s.now()) }

// SaveContacts writes the directory to the store.
func (s *Session) SaveContacts() error {
	if s.contactsReadOnly {
		return fmt.Errorf("contacts: %w", ErrReadOnly)
	}
	if err := s.store.SaveContacts(s.directory.All()); err != nil {
		return fmt.Errorf("saving contacts: %w", err)
	}
	s.logger.Debug("contacts saved", zap.Int("count", s.directory.Len()))
	return nil
}

// SaveNotes writes the notebook to the store.
func (s *Session) SaveNotes() error {
	if s.notesReadOnly {
		return fmt.Errorf("notes: %w", ErrReadOnly)
	}
	if err := s.store.SaveNotes(s.notebook.All()); err != nil {
		return fmt.Errorf("saving notes: %w", err)
	}
	s.logger.Debug("notes saved", zap.Int("count", s.notebook.Len()))
	return nil
}

// SaveAll saves every writable collection. Read-only collections are
// skipped.
func (s *Session) SaveAll() error {
	var errs []error
	if !s.contactsReadOnly {
		errs = append(errs, s.SaveContacts())
	}
	if !s.notesReadOnly {
		errs = append(errs, s.SaveNotes())
	}
	return errors.Join(errs...)
}

// Close detaches the store.
func (s *Session) Close() error {
	return s.store.Detach()
}
