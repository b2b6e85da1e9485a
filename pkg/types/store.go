package types

import "errors"

// Store persists the two collections as whole units. Callers attach to a
// backend, load or save full collections, and detach when done.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, load and save return ErrStoreDetached.
	Detach() error

	// LoadContacts returns every stored contact in saved order. An absent
	// backing store yields an empty slice and no error.
	LoadContacts() ([]*Record, error)

	// SaveContacts replaces the stored contacts with records.
	SaveContacts(records []*Record) error

	// LoadNotes returns every stored note in saved order. An absent
	// backing store yields an empty slice and no error.
	LoadNotes() ([]*Note, error)

	// SaveNotes replaces the stored notes with notes.
	SaveNotes(notes []*Note) error
}

// Store lifecycle and decoding errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrCorruptData     = errors.New("stored data is corrupt")
)
