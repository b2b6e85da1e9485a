package cli

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/memok/pkg/types"
)

func addNote(e *env, args []string) error {
	if _, err := e.session.NoteBook().AddNote(args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Note added.")
	return nil
}

func showNote(e *env, args []string) error {
	n, ok := e.session.NoteBook().Find(args[0])
	if !ok {
		return fmt.Errorf("note %s: %w", args[0], types.ErrNotFound)
	}
	fmt.Fprintln(e.out, n)
	return nil
}

func showAllNotes(e *env, _ []string) error {
	notes := e.session.NoteBook().All()
	if len(notes) == 0 {
		fmt.Fprintln(e.out, "No notes saved.")
		return nil
	}
	fmt.Fprintln(e.out, header("All notes"))
	writeNotes(e.out, notes)
	return nil
}

func editNote(e *env, args []string) error {
	if err := e.session.NoteBook().UpdateNote(args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Note updated.")
	return nil
}

func deleteNote(e *env, args []string) error {
	if err := e.session.NoteBook().DeleteNote(args[0]); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Note deleted.")
	return nil
}

func addTag(e *env, args []string) error {
	if err := e.session.NoteBook().AddTag(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Tag added.")
	return nil
}

func removeTag(e *env, args []string) error {
	if err := e.session.NoteBook().RemoveTag(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Tag removed.")
	return nil
}

func searchNotes(e *env, args []string) error {
	matches := e.session.NoteBook().SearchByText(strings.Join(args, " "))
	if len(matches) == 0 {
		fmt.Fprintln(e.out, "No matching notes found.")
		return nil
	}
	writeNotes(e.out, matches)
	return nil
}

func searchTags(e *env, args []string) error {
	matches := e.session.NoteBook().SearchByTags(args...)
	if len(matches) == 0 {
		fmt.Fprintln(e.out, "No matching notes found.")
		return nil
	}
	writeNotes(e.out, matches)
	return nil
}

func listTags(e *env, _ []string) error {
	tags := e.session.NoteBook().Tags()
	if len(tags) == 0 {
		fmt.Fprintln(e.out, "No tags yet.")
		return nil
	}
	fmt.Fprintln(e.out, strings.Join(tags, ", "))
	return nil
}
