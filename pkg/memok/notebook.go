package memok

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mesh-intelligence/memok/pkg/types"
)

// NoteBook maps note titles to notes in insertion order.
type NoteBook struct {
	notes map[string]*types.Note
	order []string
}

// NewNoteBook returns a notebook holding notes in the given order. A later
// note with the same title replaces an earlier one.
func NewNoteBook(notes ...*types.Note) *NoteBook {
	nb := &NoteBook{notes: make(map[string]*types.Note, len(notes))}
	for _, n := range notes {
		nb.Add(n)
	}
	return nb
}

// Add stores n under its title, replacing any note with that title.
func (nb *NoteBook) Add(n *types.Note) {
	key := n.Title()
	if _, ok := nb.notes[key]; !ok {
		nb.order = append(nb.order, key)
	}
	nb.notes[key] = n
}

// AddNote creates a note and stores it. Returns ErrAlreadyExists if the
// title is taken.
func (nb *NoteBook) AddNote(title, content string, tags ...string) (*types.Note, error) {
	if _, ok := nb.notes[strings.TrimSpace(title)]; ok {
		return nil, fmt.Errorf("note %q: %w", strings.TrimSpace(title), types.ErrAlreadyExists)
	}
	n, err := types.NewNote(title, content, tags...)
	if err != nil {
		return nil, err
	}
	nb.Add(n)
	return n, nil
}

// Find returns the note stored under title.
func (nb *NoteBook) Find(title string) (*types.Note, bool) {
	n, ok := nb.notes[strings.TrimSpace(title)]
	return n, ok
}

// UpdateNote replaces the content of the note stored under title.
func (nb *NoteBook) UpdateNote(title, content string) error {
	n, err := nb.get(title)
	if err != nil {
		return err
	}
	n.UpdateContent(content)
	return nil
}

// DeleteNote removes the note stored under title.
func (nb *NoteBook) DeleteNote(title string) error {
	n, err := nb.get(title)
	if err != nil {
		return err
	}
	key := n.Title()
	delete(nb.notes, key)
	nb.order = slices.DeleteFunc(nb.order, func(k string) bool { return k == key })
	return nil
}

// AddTag tags the note stored under title.
func (nb *NoteBook) AddTag(title, tag string) error {
	n, err := nb.get(title)
	if err != nil {
		return err
	}
	return n.AddTag(tag)
}

// RemoveTag untags the note stored under title. Removing a tag the note
// does not carry succeeds.
func (nb *NoteBook) RemoveTag(title, tag string) error {
	n, err := nb.get(title)
	if err != nil {
		return err
	}
	n.RemoveTag(tag)
	return nil
}

// SearchByText returns notes whose title or content contains query,
// ignoring case.
func (nb *NoteBook) SearchByText(query string) []*types.Note {
	var out []*types.Note
	for _, key := range nb.order {
		if n := nb.notes[key]; n.Matches(query) {
			out = append(out, n)
		}
	}
	return out
}

// SearchByTags returns notes carrying at least one of tags.
func (nb *NoteBook) SearchByTags(tags ...string) []*types.Note {
	var out []*types.Note
	for _, key := range nb.order {
		n := nb.notes[key]
		if slices.ContainsFunc(tags, n.HasTag) {
			out = append(out, n)
		}
	}
	return out
}

// Tags returns the distinct tags of all notes, sorted.
func (nb *NoteBook) Tags() []string {
	var out []string
	for _, n := range nb.notes {
		out = append(out, n.Tags()...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// All returns every note in insertion order.
func (nb *NoteBook) All() []*types.Note {
	out := make([]*types.Note, 0, len(nb.order))
	for _, key := range nb.order {
		out = append(out, nb.notes[key])
	}
	return out
}

// Len returns the number of notes.
func (nb *NoteBook) Len() int { return len(nb.order) }

func (nb *NoteBook) get(title string) (*types.Note, error) {
	n, ok := nb.Find(title)
	if !ok {
		return nil, fmt.Errorf("note %q: %w", strings.TrimSpace(title), types.ErrNotFound)
	}
	return n, nil
}
