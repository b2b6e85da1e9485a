package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "simple", raw: "Ann", want: "Ann"},
		{name: "with space and digits", raw: "Ann Lee 2", want: "Ann Lee 2"},
		{name: "trims surrounding whitespace", raw: "  Bob ", want: "Bob"},
		{name: "unicode letters", raw: "Олена", want: "Олена"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
		{name: "punctuation", raw: "Ann-Marie", wantErr: true},
		{name: "symbol", raw: "Bob!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain digits", raw: "0501234567", want: "0501234567"},
		{name: "separators stripped", raw: "(050) 123-45-67", want: "0501234567"},
		{name: "dots and spaces", raw: "050.123 4567", want: "0501234567"},
		{name: "too short", raw: "12345", wantErr: true},
		{name: "too long", raw: "+380501234567", wantErr: true},
		{name: "no digits", raw: "phone", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePhone(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "phone", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"ann@example.com", "a.b+c@mail.co.uk", "x_y%z@sub-domain.io"}
	for _, raw := range valid {
		t.Run("valid "+raw, func(t *testing.T) {
			got, err := ValidateEmail(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}

	invalidInputs := []string{"", "ann", "@example.com", "ann@example", "ann@example.c", "ann@@example.com", "ann example@x.com"}
	for _, raw := range invalidInputs {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := ValidateEmail(raw)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidateAddress(t *testing.T) {
	got, err := ValidateAddress("  Kyiv, Main st 1 ")
	require.NoError(t, err)
	assert.Equal(t, "Kyiv, Main st 1", got)

	_, err = ValidateAddress(" \t ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseBirthday(t *testing.T) {
	today := time.Date(2024, time.June, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "past date", raw: "13.06.1985"},
		{name: "single digit day and month", raw: "1.6.1990", want: "01.06.1990"},
		{name: "single digit day", raw: "5.12.1990", want: "05.12.1990"},
		{name: "today is accepted", raw: "10.06.2024"},
		{name: "yesterday", raw: "09.06.2024"},
		{name: "tomorrow is rejected", raw: "11.06.2024", wantErr: true},
		{name: "next year is rejected", raw: "01.01.2025", wantErr: true},
		{name: "wrong separator", raw: "13/06/1985", wantErr: true},
		{name: "iso order", raw: "1985-06-13", wantErr: true},
		{name: "two digit year", raw: "13.06.85", wantErr: true},
		{name: "impossible day", raw: "31.02.2000", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBirthday(tt.raw, today)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			want := tt.want
			if want == "" {
				want = tt.raw
			}
			assert.Equal(t, want, b.String())
			assert.Equal(t, time.UTC, b.Date().Location())
			assert.Zero(t, b.Date().Hour())
		})
	}
}

func TestCalendarDate(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*60*60)
	got := CalendarDate(time.Date(2024, time.June, 10, 1, 0, 0, 0, zone))
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestFieldKinds(t *testing.T) {
	fields := map[string]Field{
		"name":     Name{},
		"phone":    Phone{},
		"email":    Email{},
		"address":  Address{},
		"birthday": Birthday{},
	}
	for kind, f := range fields {
		assert.Equal(t, kind, f.Kind())
	}
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := NewPhone("123")
	require.Error(t, err)
	assert.Equal(t, `invalid phone "123": phone number must contain exactly 10 digits`, err.Error())
}
