// Package storetest holds the behaviour every types.Store must show. Each
// backend runs Run from its own tests.
package storetest

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mesh-intelligence/memok/pkg/types"
)

// Factory returns a detached store and the config to attach it with.
type Factory func(t *testing.T) (types.Store, types.Config)

// EntityOptions compares records and notes field by field.
var EntityOptions = cmp.Options{
	cmp.AllowUnexported(
		types.Record{}, types.Note{},
		types.Name{}, types.Phone{}, types.Email{}, types.Address{}, types.Birthday{},
	),
}

// Contacts returns a fixed set of records covering every optional slot.
func Contacts(t *testing.T) []*types.Record {
	t.Helper()
	ann := mustRecord(t, "ann-id", "Ann Lee", "0501234567", "0931112233")
	must(t, ann.SetEmail("ann@example.com"))
	must(t, ann.SetAddress("Kyiv, Khreshchatyk 1"))
	must(t, ann.SetBirthday("29.02.2000"))

	bob := mustRecord(t, "bob-id", "Bob", "0671234567")
	must(t, bob.SetBirthday("13.06.1985"))

	cara := mustRecord(t, "cara-id", "Cara")
	return []*types.Record{ann, bob, cara}
}

// Notes returns a fixed set of notes with tags and distinct timestamps.
func Notes(t *testing.T) []*types.Note {
	t.Helper()
	created := time.Date(2024, time.June, 1, 8, 15, 30, 123456789, time.UTC)
	plan, err := types.RestoreNote("plan-id", "Plan", "line one\nline two", []string{"Work", "urgent"}, created, created.Add(time.Hour))
	must(t, err)
	empty, err := types.RestoreNote("empty-id", "Empty", "", nil, created, created)
	must(t, err)
	return []*types.Note{plan, empty}
}

// Run exercises the store contract against stores built by factory.
func Run(t *testing.T, factory Factory) {
	t.Run("fresh store loads empty", func(t *testing.T) {
		s := attach(t, factory)
		contacts, err := s.LoadContacts()
		must(t, err)
		if len(contacts) != 0 {
			t.Errorf("expected no contacts, got %d", len(contacts))
		}
		notes, err := s.LoadNotes()
		must(t, err)
		if len(notes) != 0 {
			t.Errorf("expected no notes, got %d", len(notes))
		}
	})

	t.Run("round trip", func(t *testing.T) {
		s, config := factory(t)
		must(t, s.Attach(config))

		contacts, notes := Contacts(t), Notes(t)
		must(t, s.SaveContacts(contacts))
		must(t, s.SaveNotes(notes))
		must(t, s.Detach())

		// Reattach to read from disk rather than any cache.
		must(t, s.Attach(config))
		t.Cleanup(func() { s.Detach() })

		gotContacts, err := s.LoadContacts()
		must(t, err)
		if diff := cmp.Diff(contacts, gotContacts, EntityOptions); diff != "" {
			t.Errorf("contacts mismatch (-want +got):\n%s", diff)
		}
		gotNotes, err := s.LoadNotes()
		must(t, err)
		if diff := cmp.Diff(notes, gotNotes, EntityOptions); diff != "" {
			t.Errorf("notes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("save replaces the collection", func(t *testing.T) {
		s := attach(t, factory)
		contacts := Contacts(t)
		must(t, s.SaveContacts(contacts))
		must(t, s.SaveContacts(contacts[1:2]))

		got, err := s.LoadContacts()
		must(t, err)
		if diff := cmp.Diff(contacts[1:2], got, EntityOptions); diff != "" {
			t.Errorf("contacts mismatch (-want +got):\n%s", diff)
		}

		must(t, s.SaveNotes(Notes(t)))
		must(t, s.SaveNotes(nil))
		notes, err := s.LoadNotes()
		must(t, err)
		if len(notes) != 0 {
			t.Errorf("expected notes to be cleared, got %d", len(notes))
		}
	})

	t.Run("attach twice", func(t *testing.T) {
		s, config := factory(t)
		must(t, s.Attach(config))
		t.Cleanup(func() { s.Detach() })
		if err := s.Attach(config); !errors.Is(err, types.ErrAlreadyAttached) {
			t.Errorf("expected ErrAlreadyAttached, got %v", err)
		}
	})

	t.Run("detached store", func(t *testing.T) {
		s, config := factory(t)
		must(t, s.Attach(config))
		must(t, s.Detach())
		must(t, s.Detach())

		if _, err := s.LoadContacts(); !errors.Is(err, types.ErrStoreDetached) {
			t.Errorf("LoadContacts: expected ErrStoreDetached, got %v", err)
		}
		if err := s.SaveNotes(nil); !errors.Is(err, types.ErrStoreDetached) {
			t.Errorf("SaveNotes: expected ErrStoreDetached, got %v", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		s, config := factory(t)
		config.Backend = ""
		if err := s.Attach(config); !errors.Is(err, types.ErrBackendEmpty) {
			t.Errorf("expected ErrBackendEmpty, got %v", err)
		}
	})
}

func attach(t *testing.T, factory Factory) types.Store {
	t.Helper()
	s, config := factory(t)
	must(t, s.Attach(config))
	t.Cleanup(func() { s.Detach() })
	return s
}

func mustRecord(t *testing.T, id, name string, phones ...string) *types.Record {
	t.Helper()
	r, err := types.RestoreRecord(id, name)
	must(t, err)
	for _, p := range phones {
		must(t, r.AddPhone(p))
	}
	return r
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
