package memok

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type reminder struct {
	name string
	date time.Time
}

func reminders(in []BirthdayReminder) []reminder {
	out := make([]reminder, 0, len(in))
	for _, r := range in {
		out = append(out, reminder{name: r.Name, date: r.CongratulationDate})
	}
	return out
}

func TestUpcomingBirthdays(t *testing.T) {
	monday := date(2024, time.June, 10)

	tests := []struct {
		name     string
		today    time.Time
		window   int
		contacts map[string]string
		want     []reminder
	}{
		{
			name:   "past birthday this year is excluded, weekday kept, weekend shifted",
			today:  monday,
			window: 7,
			contacts: map[string]string{
				"Ann":  "06.06.1990",
				"Bob":  "13.06.1985",
				"Cara": "15.06.2000",
			},
			want: []reminder{
				{name: "Bob", date: date(2024, time.June, 13)},
				{name: "Cara", date: date(2024, time.June, 17)},
			},
		},
		{
			name:     "birthday today is included",
			today:    monday,
			window:   7,
			contacts: map[string]string{"Ann": "10.06.1990"},
			want:     []reminder{{name: "Ann", date: monday}},
		},
		{
			name:     "window boundary is exclusive",
			today:    monday,
			window:   7,
			contacts: map[string]string{"Ann": "17.06.1990"},
			want:     nil,
		},
		{
			name:     "sunday moves to monday",
			today:    monday,
			window:   7,
			contacts: map[string]string{"Ann": "16.06.1990"},
			want:     []reminder{{name: "Ann", date: date(2024, time.June, 17)}},
		},
		{
			name:     "wider window",
			today:    monday,
			window:   30,
			contacts: map[string]string{"Ann": "01.07.1990"},
			want:     []reminder{{name: "Ann", date: date(2024, time.July, 1)}},
		},
		{
			name:     "wraps into next year",
			today:    date(2024, time.December, 30),
			window:   7,
			contacts: map[string]string{"Ann": "02.01.1990"},
			want:     []reminder{{name: "Ann", date: date(2025, time.January, 2)}},
		},
		{
			name:     "leap day in non-leap year falls on 28 February",
			today:    date(2025, time.February, 25),
			window:   7,
			contacts: map[string]string{"Ann": "29.02.2000"},
			want:     []reminder{{name: "Ann", date: date(2025, time.February, 28)}},
		},
		{
			name:     "leap day in leap year",
			today:    date(2024, time.February, 26),
			window:   7,
			contacts: map[string]string{"Ann": "29.02.2000"},
			want:     []reminder{{name: "Ann", date: date(2024, time.February, 29)}},
		},
		{
			name:   "same congratulation date sorts by name",
			today:  monday,
			window: 7,
			contacts: map[string]string{
				"Dan":  "16.06.1991",
				"Cara": "15.06.2000",
				"Bob":  "17.06.1985",
			},
			want: []reminder{
				{name: "Cara", date: date(2024, time.June, 17)},
				{name: "Dan", date: date(2024, time.June, 17)},
			},
		},
		{
			name:     "zero window yields nothing",
			today:    monday,
			window:   0,
			contacts: map[string]string{"Ann": "10.06.1990"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirectory()
			for name, birthday := range tt.contacts {
				d.Add(contact(t, name, "", birthday))
			}
			got := d.UpcomingBirthdays(tt.today, tt.window)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, reminders(got))
		})
	}
}

func TestUpcomingBirthdaysIgnoresTimeOfDay(t *testing.T) {
	d := NewDirectory(contact(t, "Bob", "", "13.06.1985"))
	evening := time.Date(2024, time.June, 10, 23, 59, 0, 0, time.Local)

	got := d.UpcomingBirthdays(evening, 7)
	require.Len(t, got, 1)
	assert.Equal(t, "13.06.1985", got[0].Birthday.String())
	assert.Equal(t, date(2024, time.June, 13), got[0].CongratulationDate)
}

func TestUpcomingBirthdaysSkipsContactsWithoutBirthday(t *testing.T) {
	d := NewDirectory(contact(t, "Ann", "0501234567", ""))
	assert.Empty(t, d.UpcomingBirthdays(date(2024, time.June, 10), 365))
}
