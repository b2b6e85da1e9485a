package types

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Note is a titled text entry with a case-insensitive tag set.
// The title is the note's key inside a notebook and never changes.
type Note struct {
	id        string
	title     string
	content   string
	tags      map[string]struct{}
	createdAt time.Time
	updatedAt time.Time
}

// NewNote creates a note stamped with the current time.
func NewNote(title, content string, tags ...string) (*Note, error) {
	now := time.Now()
	return RestoreNote(newID(), title, content, tags, now, now)
}

// RestoreNote recreates a note with known identity and timestamps.
func RestoreNote(id, title, content string, tags []string, createdAt, updatedAt time.Time) (*Note, error) {
	if id == "" {
		return nil, invalid("id", id, "id cannot be empty")
	}
	t := strings.TrimSpace(title)
	if t == "" {
		return nil, invalid("title", title, "title cannot be empty")
	}
	n := &Note{
		id:        id,
		title:     t,
		content:   content,
		tags:      make(map[string]struct{}, len(tags)),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	for _, tag := range tags {
		key, err := normalizeTag(tag)
		if err != nil {
			return nil, err
		}
		n.tags[key] = struct{}{}
	}
	return n, nil
}

func (n *Note) ID() string           { return n.id }
func (n *Note) Title() string        { return n.title }
func (n *Note) Content() string      { return n.content }
func (n *Note) CreatedAt() time.Time { return n.createdAt }
func (n *Note) UpdatedAt() time.Time { return n.updatedAt }

// UpdateContent replaces the content and refreshes UpdatedAt.
func (n *Note) UpdateContent(text string) {
	n.content = text
	n.updatedAt = time.Now()
}

// AddTag adds tag in lower case. Adding a tag twice is a no-op.
func (n *Note) AddTag(tag string) error {
	key, err := normalizeTag(tag)
	if err != nil {
		return err
	}
	n.tags[key] = struct{}{}
	return nil
}

// RemoveTag drops tag, ignoring case. Removing an absent tag is a no-op.
func (n *Note) RemoveTag(tag string) {
	key, err := normalizeTag(tag)
	if err != nil {
		return
	}
	delete(n.tags, key)
}

// HasTag reports whether tag is set, ignoring case.
func (n *Note) HasTag(tag string) bool {
	key, err := normalizeTag(tag)
	if err != nil {
		return false
	}
	_, ok := n.tags[key]
	return ok
}

// Tags returns the tags sorted alphabetically.
func (n *Note) Tags() []string {
	out := make([]string, 0, len(n.tags))
	for t := range n.tags {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Matches reports whether query occurs in the title or the content,
// ignoring case.
func (n *Note) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.title), q) ||
		strings.Contains(strings.ToLower(n.content), q)
}

func (n *Note) String() string {
	var b strings.Builder
	b.WriteString("Title: " + n.title + "\n")
	b.WriteString("Content: " + n.content + "\n")
	if len(n.tags) > 0 {
		b.WriteString("Tags: " + strings.Join(n.Tags(), ", ") + "\n")
	}
	b.WriteString("Updated: " + n.updatedAt.Format("2006-01-02 15:04:05"))
	return b.String()
}

func normalizeTag(tag string) (string, error) {
	t := strings.TrimSpace(tag)
	if t == "" {
		return "", invalid("tag", tag, "tag cannot be empty")
	}
	return cases.Lower(language.Und).String(t), nil
}
