package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/memok/pkg/types"
)

func hello(e *env, _ []string) error {
	fmt.Fprintln(e.out, "How can I help you?")
	return nil
}

// findContact returns the named contact or a wrapped ErrNotFound.
func findContact(e *env, name string) (*types.Record, error) {
	r, ok := e.session.Directory().Find(name)
	if !ok {
		return nil, fmt.Errorf("contact %s: %w", name, types.ErrNotFound)
	}
	return r, nil
}

func addContact(e *env, args []string) error {
	name, phone := args[0], args[1]
	d := e.session.Directory()

	if r, ok := d.Find(name); ok {
		if err := r.AddPhone(phone); err != nil {
			return err
		}
		fmt.Fprintln(e.out, "Contact updated.")
		return nil
	}

	r, err := types.NewRecord(name)
	if err != nil {
		return err
	}
	if err := r.AddPhone(phone); err != nil {
		return err
	}
	d.Add(r)
	fmt.Fprintln(e.out, "Contact added.")
	return nil
}

func changePhone(e *env, args []string) error {
	r, err := findContact(e, args[0])
	if err != nil {
		return err
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Phone number updated.")
	return nil
}

func removePhone(e *env, args []string) error {
	r, err := findContact(e, args[0])
	if err != nil {
		return err
	}
	if err := r.RemovePhone(args[1]); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Phone number removed.")
	return nil
}

func showPhone(e *env, args []string) error {
	r, err := findContact(e, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, r)
	return nil
}

func showAll(e *env, _ []string) error {
	records := e.session.Directory().All()
	if len(records) == 0 {
		fmt.Fprintln(e.out, "No contacts saved.")
		return nil
	}
	fmt.Fprintln(e.out, header("All contacts"))
	return writeContacts(e.out, records)
}

func findContacts(e *env, args []string) error {
	matches := e.session.Directory().Search(args[0])
	if len(matches) == 0 {
		fmt.Fprintln(e.out, "No matching contacts found.")
		return nil
	}
	return writeContacts(e.out, matches)
}

// deleteContact succeeds whether or not the contact exists.
func deleteContact(e *env, args []string) error {
	e.session.Directory().Delete(args[0])
	fmt.Fprintf(e.out, "Contact %s deleted.\n", args[0])
	return nil
}

func addBirthday(e *env, args []string) error {
	r, err := findContact(e, args[0])
	if err != nil {
		return err
	}
	if err := r.SetBirthday(args[1]); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Birthday added.")
	return nil
}

func showBirthday(e *env, args []string) error {
	r, err := findContact(e, args[0])
	if err != nil {
		return err
	}
	b, ok := r.Birthday()
	if !ok {
		fmt.Fprintf(e.out, "%s has no birthday set.\n", r.Name())
		return nil
	}
	fmt.Fprintf(e.out, "%s's birthday: %s\n", r.Name(), b)
	return nil
}

func upcomingBirthdays(e *env, args []string) error {
	days := e.birthdayWindow
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return &types.ValidationError{Field: "days", Value: args[0], Reason: "days must be a positive whole number"}
		}
		days = n
	}

	reminders := e.session.Directory().UpcomingBirthdays(e.session.Today(), days)
	if len(reminders) == 0 {
		fmt.Fprintln(e.out, "No upcoming birthdays.")
		return nil
	}
	fmt.Fprintln(e.out, header(fmt.Sprintf("Upcoming birthdays (next %d days)", days)))
	return writeReminders(e.out, reminders)
}

func addEmail(e *env, args []string) error {
	r, err := findContact(e, args[0])
	if err != nil {
		return err
	}
	if err := r.SetEmail(args[1]); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Email added.")
	return nil
}

func addAddress(e *env, args []string) error {
	r, err := findContact(e, args[0])
	if err != nil {
		return err
	}
	if err := r.SetAddress(strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Address added.")
	return nil
}
