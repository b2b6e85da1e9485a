package cli

import (
	"errors"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// errMissingArgs is returned when a verb gets fewer arguments than it needs.
var errMissingArgs = errors.New("missing arguments")

// saveTarget names the collection a verb mutates.
type saveTarget int

const (
	savesNothing saveTarget = iota
	savesContacts
	savesNotes
)

// command is one verb, shared by the cobra subcommands and the
// interactive loop.
type command struct {
	name    string
	args    string
	short   string
	minArgs int
	saves   saveTarget
	run     func(e *env, args []string) error
}

func commandTable() []command {
	return []command{
		{name: "hello", short: "Get a greeting", run: hello},

		{name: "add", args: "<name> <phone>", short: "Add a contact or another phone to it", minArgs: 2, saves: savesContacts, run: addContact},
		{name: "change", args: "<name> <old-phone> <new-phone>", short: "Replace a phone of a contact", minArgs: 3, saves: savesContacts, run: changePhone},
		{name: "remove-phone", args: "<name> <phone>", short: "Remove a phone from a contact", minArgs: 2, saves: savesContacts, run: removePhone},
		{name: "phone", args: "<name>", short: "Show a contact", minArgs: 1, run: showPhone},
		{name: "all", short: "Show all contacts", run: showAll},
		{name: "find", args: "<query>", short: "Search contacts by name, phone, email or address", minArgs: 1, run: findContacts},
		{name: "delete-contact", args: "<name>", short: "Delete a contact", minArgs: 1, saves: savesContacts, run: deleteContact},
		{name: "add-birthday", args: "<name> <DD.MM.YYYY>", short: "Set a contact's birthday", minArgs: 2, saves: savesContacts, run: addBirthday},
		{name: "show-birthday", args: "<name>", short: "Show a contact's birthday", minArgs: 1, run: showBirthday},
		{name: "birthdays", args: "[days]", short: "Show upcoming birthdays", run: upcomingBirthdays},
		{name: "add-email", args: "<name> <email>", short: "Set a contact's email", minArgs: 2, saves: savesContacts, run: addEmail},
		{name: "add-address", args: "<name> <address...>", short: "Set a contact's address", minArgs: 2, saves: savesContacts, run: addAddress},

		{name: "add-note", args: "<title> <content...>", short: "Add a note", minArgs: 2, saves: savesNotes, run: addNote},
		{name: "show-note", args: "<title>", short: "Show a note", minArgs: 1, run: showNote},
		{name: "all-notes", short: "Show all notes", run: showAllNotes},
		{name: "edit-note", args: "<title> <content...>", short: "Replace the content of a note", minArgs: 2, saves: savesNotes, run: editNote},
		{name: "delete-note", args: "<title>", short: "Delete a note", minArgs: 1, saves: savesNotes, run: deleteNote},
		{name: "add-tag", args: "<title> <tag>", short: "Tag a note", minArgs: 2, saves: savesNotes, run: addTag},
		{name: "remove-tag", args: "<title> <tag>", short: "Untag a note", minArgs: 2, saves: savesNotes, run: removeTag},
		{name: "search-notes", args: "<query...>", short: "Search notes by title or content", minArgs: 1, run: searchNotes},
		{name: "search-tags", args: "<tag...>", short: "Show notes carrying any of the tags", minArgs: 1, run: searchTags},
		{name: "tags", short: "List all tags", run: listTags},
	}
}

// lookup finds a verb by name.
func lookup(name string) (command, bool) {
	table := commandTable()
	i := slices.IndexFunc(table, func(c command) bool { return c.name == name })
	if i < 0 {
		return command{}, false
	}
	return table[i], true
}

// verbNames returns every verb, including the interactive-only ones.
func verbNames() []string {
	names := []string{"help", "exit", "close"}
	for _, c := range commandTable() {
		names = append(names, c.name)
	}
	return names
}

// invoke checks the argument count, runs the handler and saves the
// collection it changed.
func (c command) invoke(e *env, args []string) error {
	if len(args) < c.minArgs {
		return errMissingArgs
	}
	if err := c.run(e, args); err != nil {
		return err
	}
	var err error
	switch c.saves {
	case savesContacts:
		err = e.session.SaveContacts()
	case savesNotes:
		err = e.session.SaveNotes()
	}
	if err != nil {
		return &systemError{err: err}
	}
	return nil
}

func (c command) usage() string {
	return strings.TrimSpace(c.name + " " + c.args)
}

// newVerbCmd wraps a verb as a one-shot cobra subcommand.
func (a *app) newVerbCmd(c command) *cobra.Command {
	return &cobra.Command{
		Use:   c.usage(),
		Short: c.short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeFn, err := a.openEnv(cmd)
			if err != nil {
				return err
			}
			defer closeFn()
			return c.invoke(e, args)
		},
	}
}
