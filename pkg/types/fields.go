package types

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// BirthdayLayout is the birthday format (DD.MM.YYYY). Parsing also
// accepts single-digit day and month.
const BirthdayLayout = "02.01.2006"

const birthdayParseLayout = "2.1.2006"

// phoneDigits is the exact digit count of a normalized phone number.
const phoneDigits = 10

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Field is implemented by every validated contact field. Values of these
// types only exist after their validator accepted the input.
type Field interface {
	Kind() string
	String() string
}

var (
	_ Field = Name{}
	_ Field = Phone{}
	_ Field = Email{}
	_ Field = Address{}
	_ Field = Birthday{}
)

// ValidateName trims raw and checks it is non-empty and made of letters,
// digits and whitespace only.
func ValidateName(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", invalid("name", raw, "name cannot be empty")
	}
	for _, r := range v {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return "", invalid("name", raw, "name can only contain letters, numbers, and spaces")
		}
	}
	return v, nil
}

// NormalizePhone strips every character that is not an ASCII digit. It does
// not check the length; use ValidatePhone for that.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone normalizes raw and requires exactly ten digits.
func ValidatePhone(raw string) (string, error) {
	digits := NormalizePhone(raw)
	if len(digits) != phoneDigits {
		return "", invalid("phone", raw, "phone number must contain exactly 10 digits")
	}
	return digits, nil
}

// ValidateEmail checks raw against the local@domain.tld shape.
func ValidateEmail(raw string) (string, error) {
	if !emailPattern.MatchString(raw) {
		return "", invalid("email", raw, "invalid email format")
	}
	return raw, nil
}

// ValidateAddress trims raw and rejects empty input.
func ValidateAddress(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", invalid("address", raw, "address cannot be empty")
	}
	return v, nil
}

// Name is a contact name.
type Name struct{ value string }

// NewName validates raw and returns a Name.
func NewName(raw string) (Name, error) {
	v, err := ValidateName(raw)
	if err != nil {
		return Name{}, err
	}
	return Name{value: v}, nil
}

func (Name) Kind() string     { return "name" }
func (n Name) String() string { return n.value }

// Phone is a normalized ten-digit phone number.
type Phone struct{ digits string }

// NewPhone validates raw and returns its normalized Phone.
func NewPhone(raw string) (Phone, error) {
	v, err := ValidatePhone(raw)
	if err != nil {
		return Phone{}, err
	}
	return Phone{digits: v}, nil
}

func (Phone) Kind() string     { return "phone" }
func (p Phone) String() string { return p.digits }

// Equal reports whether both phones carry the same digits.
func (p Phone) Equal(other Phone) bool { return p.digits == other.digits }

// Email is a syntactically valid e-mail address.
type Email struct{ value string }

// NewEmail validates raw and returns an Email.
func NewEmail(raw string) (Email, error) {
	v, err := ValidateEmail(raw)
	if err != nil {
		return Email{}, err
	}
	return Email{value: v}, nil
}

func (Email) Kind() string     { return "email" }
func (e Email) String() string { return e.value }

// Address is a free-form postal address.
type Address struct{ value string }

// NewAddress validates raw and returns an Address.
func NewAddress(raw string) (Address, error) {
	v, err := ValidateAddress(raw)
	if err != nil {
		return Address{}, err
	}
	return Address{value: v}, nil
}

func (Address) Kind() string     { return "address" }
func (a Address) String() string { return a.value }

// Birthday is a calendar date that is not in the future. The date is held
// at midnight UTC.
type Birthday struct{ date time.Time }

// ParseBirthday parses raw as DD.MM.YYYY and rejects dates after today's
// calendar date. Today itself is accepted.
func ParseBirthday(raw string, today time.Time) (Birthday, error) {
	d, err := time.Parse(birthdayParseLayout, strings.TrimSpace(raw))
	if err != nil {
		return Birthday{}, invalid("birthday", raw, "invalid date format, use DD.MM.YYYY")
	}
	if d.After(CalendarDate(today)) {
		return Birthday{}, invalid("birthday", raw, "birthday cannot be in the future")
	}
	return Birthday{date: d}, nil
}

// NewBirthday is ParseBirthday against the current date.
func NewBirthday(raw string) (Birthday, error) {
	return ParseBirthday(raw, time.Now())
}

func (Birthday) Kind() string     { return "birthday" }
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// CalendarDate drops the time of day from t, keeping the year, month and
// day as seen in t's location, and returns that date at midnight UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
