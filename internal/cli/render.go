package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mesh-intelligence/memok/pkg/memok"
	"github.com/mesh-intelligence/memok/pkg/types"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("12"))

func header(title string) string {
	return headerStyle.Render(title)
}

// renderError turns a command error into the line shown to the user.
func renderError(err error) string {
	switch {
	case errors.Is(err, errMissingArgs):
		return "Please provide all required arguments"
	case errors.Is(err, types.ErrValidation):
		return "Validation error: " + err.Error()
	case errors.Is(err, types.ErrNotFound):
		return "Not found: " + strings.TrimSuffix(err.Error(), ": "+types.ErrNotFound.Error())
	default:
		return "An error occurred: " + err.Error()
	}
}

// suggest returns the closest verb to the unknown input, if any.
func suggest(input string) (string, bool) {
	matches := fuzzy.Find(input, verbNames())
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}

func writeContacts(out io.Writer, records []*types.Record) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPHONES\tEMAIL\tADDRESS\tBIRTHDAY")
	for _, r := range records {
		phones := make([]string, 0, len(r.Phones()))
		for _, p := range r.Phones() {
			phones = append(phones, p.String())
		}
		email, address, birthday := "-", "-", "-"
		if v, ok := r.Email(); ok {
			email = v.String()
		}
		if v, ok := r.Address(); ok {
			address = v.String()
		}
		if v, ok := r.Birthday(); ok {
			birthday = v.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Name(), orDash(strings.Join(phones, "; ")), email, address, birthday)
	}
	return w.Flush()
}

func writeReminders(out io.Writer, reminders []memok.BirthdayReminder) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBIRTHDAY\tCONGRATULATE ON")
	for _, r := range reminders {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.Birthday, r.CongratulationDate.Format("Mon "+types.BirthdayLayout))
	}
	return w.Flush()
}

func writeNotes(out io.Writer, notes []*types.Note) {
	for i, n := range notes {
		if i > 0 {
			fmt.Fprintln(out, strings.Repeat("-", 20))
		}
		fmt.Fprintln(out, n)
	}
}

func writeHelp(out io.Writer) error {
	fmt.Fprintln(out, header("Available commands"))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range commandTable() {
		fmt.Fprintf(w, "  %s\t%s\n", c.usage(), c.short)
	}
	fmt.Fprintln(w, "  help\tShow this help")
	fmt.Fprintln(w, "  exit, close\tSave and quit")
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
