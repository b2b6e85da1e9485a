package memok

import (
	"slices"
	"strings"
	"time"

	"github.com/mesh-intelligence/memok/pkg/types"
)

// DefaultBirthdayWindow is the look-ahead used when none is configured.
const DefaultBirthdayWindow = 7

// BirthdayReminder is one upcoming birthday. CongratulationDate is the
// next occurrence of the birthday, moved to Monday when it falls on a
// weekend.
type BirthdayReminder struct {
	Name               string
	Birthday           types.Birthday
	CongratulationDate time.Time
}

// UpcomingBirthdays returns the contacts whose next birthday is fewer than
// windowDays days after today. Results are ordered by congratulation date,
// then by name.
func (d *Directory) UpcomingBirthdays(today time.Time, windowDays int) []BirthdayReminder {
	day := types.CalendarDate(today)
	var out []BirthdayReminder
	for _, key := range d.order {
		r := d.records[key]
		b, ok := r.Birthday()
		if !ok {
			continue
		}
		next := nextOccurrence(b.Date(), day)
		if daysBetween(day, next) >= windowDays {
			continue
		}
		out = append(out, BirthdayReminder{
			Name:               r.Name().String(),
			Birthday:           b,
			CongratulationDate: shiftWeekend(next),
		})
	}
	slices.SortStableFunc(out, func(a, b BirthdayReminder) int {
		if c := a.CongratulationDate.Compare(b.CongratulationDate); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// nextOccurrence returns the first anniversary of birth on or after today.
// Both dates are calendar dates at midnight UTC.
func nextOccurrence(birth, today time.Time) time.Time {
	candidate := anniversary(birth, today.Year())
	if candidate.Before(today) {
		candidate = anniversary(birth, today.Year()+1)
	}
	return candidate
}

// anniversary places birth's month and day in year. 29 February maps to
// 28 February in non-leap years.
func anniversary(birth time.Time, year int) time.Time {
	month, day := birth.Month(), birth.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// shiftWeekend moves Saturday and Sunday forward to the next Monday.
func shiftWeekend(date time.Time) time.Time {
	index := (int(date.Weekday()) + 6) % 7 // Monday = 0
	if left := 7 - index; left <= 2 {
		return date.AddDate(0, 0, left)
	}
	return date
}
