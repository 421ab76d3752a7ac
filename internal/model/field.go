package model

import (
	"fmt"
	"time"
)

// field is a value holder that runs a validation rule on every
// assignment. Set validates first, so the stored value always satisfies
// the rule and a rejected assignment leaves the previous value in place.
type field struct {
	value    string
	validate func(string) error
}

// Set validates and replaces the value. Assignment is all-or-nothing.
func (f *field) Set(value string) error {
	if f.validate != nil {
		if err := f.validate(value); err != nil {
			return err
		}
	}
	f.value = value
	return nil
}

// Value returns the currently stored value.
func (f field) Value() string { return f.value }

func (f field) String() string { return f.value }

// Name is a field without any format constraint. The empty string is
// permitted and forms a legal address book key.
type Name struct {
	field
}

// NewName returns a name holding the given value.
func NewName(value string) Name {
	return Name{field{value: value}}
}

// Phone is a field holding either the empty string ("no value") or a
// number of exactly 10 decimal digits.
type Phone struct {
	field
}

// NewPhone returns a phone holding the given number, or
// ErrInvalidPhoneFormat if the number is malformed.
func NewPhone(value string) (Phone, error) {
	p := Phone{field{validate: validatePhone}}
	if err := p.Set(value); err != nil {
		return Phone{}, err
	}
	return p, nil
}

func validatePhone(value string) error {
	if value == "" {
		return nil
	}
	if len(value) != 10 {
		return fmt.Errorf("%w: %q", ErrInvalidPhoneFormat, value)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidPhoneFormat, value)
		}
	}
	return nil
}

// birthdayLayout is the only accepted textual form of a birthday.
const birthdayLayout = "02.01.2006"

// Birthday holds either no value or a calendar date. The date is stored
// parsed; rendering formats it back to DD.MM.YYYY.
type Birthday struct {
	date time.Time
}

// NewBirthday returns a birthday parsed from DD.MM.YYYY, or
// ErrInvalidDateFormat. The empty string yields an unset birthday.
func NewBirthday(value string) (Birthday, error) {
	var b Birthday
	if err := b.Set(value); err != nil {
		return Birthday{}, err
	}
	return b, nil
}

// Set validates and replaces the date. The empty string clears it. A
// rejected assignment leaves the previous date in place.
func (b *Birthday) Set(value string) error {
	if value == "" {
		b.date = time.Time{}
		return nil
	}
	date, err := time.Parse(birthdayLayout, value)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
	}
	b.date = date
	return nil
}

// IsSet reports whether the birthday holds a date.
func (b Birthday) IsSet() bool { return !b.date.IsZero() }

// Date returns the stored calendar date. The zero time means unset.
func (b Birthday) Date() time.Time { return b.date }

// String renders the date as DD.MM.YYYY, or as the empty string when no
// date is set.
func (b Birthday) String() string {
	if !b.IsSet() {
		return ""
	}
	return b.date.Format(birthdayLayout)
}
