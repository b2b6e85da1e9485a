package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote(t *testing.T) {
	n, err := NewNote("Groceries", "milk, bread", "Home", "home", " Errands ")
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID())
	assert.Equal(t, "Groceries", n.Title())
	assert.Equal(t, "milk, bread", n.Content())
	assert.Equal(t, []string{"errands", "home"}, n.Tags())
	assert.Equal(t, n.CreatedAt(), n.UpdatedAt())

	_, err = NewNote("  ", "content")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewNote("Title", "content", "ok", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNoteUpdateContentRefreshesTimestamp(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	n, err := RestoreNote("note-1", "Plan", "old", []string{"work"}, past, past)
	require.NoError(t, err)

	n.UpdateContent("new")

	assert.Equal(t, "new", n.Content())
	assert.Equal(t, past, n.CreatedAt(), "CreatedAt must not change")
	assert.True(t, n.UpdatedAt().After(past), "UpdatedAt should advance")
}

func TestNoteTagsDoNotTouchTimestamp(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	n, err := RestoreNote("note-1", "Plan", "text", nil, past, past)
	require.NoError(t, err)

	require.NoError(t, n.AddTag("Work"))
	n.RemoveTag("absent")

	assert.Equal(t, past, n.UpdatedAt())
}

func TestNoteTagSet(t *testing.T) {
	n, err := NewNote("Plan", "text")
	require.NoError(t, err)

	require.NoError(t, n.AddTag("Work"))
	require.NoError(t, n.AddTag("WORK"))
	assert.Equal(t, []string{"work"}, n.Tags())
	assert.True(t, n.HasTag("wOrK"))

	assert.ErrorIs(t, n.AddTag(" "), ErrValidation)

	n.RemoveTag("Work")
	assert.Empty(t, n.Tags())
	assert.False(t, n.HasTag("work"))

	n.RemoveTag("work")
	n.RemoveTag("")
	assert.Empty(t, n.Tags(), "removing an absent tag is a no-op")
}

func TestNoteMatches(t *testing.T) {
	n, err := NewNote("Trip to Lviv", "Book the Train tickets")
	require.NoError(t, err)

	assert.True(t, n.Matches("lviv"))
	assert.True(t, n.Matches("TRAIN"))
	assert.False(t, n.Matches("plane"))
}

func TestNoteString(t *testing.T) {
	ts := time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)
	n, err := RestoreNote("note-1", "Plan", "text", []string{"b", "a"}, ts, ts)
	require.NoError(t, err)

	assert.Equal(t, "Title: Plan\nContent: text\nTags: a, b\nUpdated: 2024-06-10 09:30:00", n.String())
}
