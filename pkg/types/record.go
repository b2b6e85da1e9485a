package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Record is one contact: an immutable name, an ordered list of unique
// phones, and optional email, address and birthday slots. All mutators
// validate first and leave the record unchanged on error.
type Record struct {
	id       string
	name     Name
	phones   []Phone
	email    *Email
	address  *Address
	birthday *Birthday
}

// NewRecord creates a contact with the given name and a fresh ID.
func NewRecord(name string) (*Record, error) {
	return RestoreRecord(newID(), name)
}

// RestoreRecord recreates a contact with a known ID. Storage backends use
// it when loading; the ID must not be empty.
func RestoreRecord(id, name string) (*Record, error) {
	if id == "" {
		return nil, invalid("id", id, "id cannot be empty")
	}
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{id: id, name: n}, nil
}

// ID returns the stable storage identifier.
func (r *Record) ID() string { return r.id }

// Name returns the contact name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Email returns the email and whether it is set.
func (r *Record) Email() (Email, bool) {
	if r.email == nil {
		return Email{}, false
	}
	return *r.email, true
}

// Address returns the address and whether it is set.
func (r *Record) Address() (Address, bool) {
	if r.address == nil {
		return Address{}, false
	}
	return *r.address, true
}

// Birthday returns the birthday and whether it is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Returns ErrDuplicatePhone if the
// same digits are already stored.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	if r.indexOf(p.digits) >= 0 {
		return fmt.Errorf("%s: %w", p, ErrDuplicatePhone)
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the phone whose digits match raw.
// Returns ErrNotFound if there is none.
func (r *Record) RemovePhone(raw string) error {
	i := r.indexOf(NormalizePhone(raw))
	if i < 0 {
		return fmt.Errorf("phone %s: %w", raw, ErrNotFound)
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// EditPhone replaces the phone matching oldRaw with newRaw. The old phone
// stays untouched when newRaw is invalid or already belongs to another
// entry of this record.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i := r.indexOf(NormalizePhone(oldRaw))
	if i < 0 {
		return fmt.Errorf("phone %s: %w", oldRaw, ErrNotFound)
	}
	p, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	if j := r.indexOf(p.digits); j >= 0 && j != i {
		return fmt.Errorf("%s: %w", p, ErrDuplicatePhone)
	}
	r.phones[i] = p
	return nil
}

// FindPhone looks a phone up by its normalized digits.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := r.indexOf(NormalizePhone(raw))
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// SetBirthday validates raw against today's date and overwrites the slot.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// SetEmail validates raw and overwrites the slot.
func (r *Record) SetEmail(raw string) error {
	e, err := NewEmail(raw)
	if err != nil {
		return err
	}
	r.email = &e
	return nil
}

// SetAddress validates raw and overwrites the slot.
func (r *Record) SetAddress(raw string) error {
	a, err := NewAddress(raw)
	if err != nil {
		return err
	}
	r.address = &a
	return nil
}

// Matches reports whether query occurs, case-insensitively, in the name,
// any phone, the email or the address.
func (r *Record) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(r.name.value), q) {
		return true
	}
	for _, p := range r.phones {
		if strings.Contains(p.digits, q) {
			return true
		}
	}
	if r.email != nil && strings.Contains(strings.ToLower(r.email.value), q) {
		return true
	}
	return r.address != nil && strings.Contains(strings.ToLower(r.address.value), q)
}

// String renders the record with the name first, then whichever of phones,
// email, address and birthday are set.
func (r *Record) String() string {
	parts := []string{"Contact name: " + r.name.value}
	if len(r.phones) > 0 {
		digits := make([]string, len(r.phones))
		for i, p := range r.phones {
			digits[i] = p.digits
		}
		parts = append(parts, "phones: "+strings.Join(digits, "; "))
	}
	if r.email != nil {
		parts = append(parts, "email: "+r.email.value)
	}
	if r.address != nil {
		parts = append(parts, "address: "+r.address.value)
	}
	if r.birthday != nil {
		parts = append(parts, "birthday: "+r.birthday.String())
	}
	return strings.Join(parts, ", ")
}

func (r *Record) indexOf(digits string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.digits == digits })
}

// newID generates a UUID v7, falling back to v4 if v7 generation fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
