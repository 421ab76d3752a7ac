package model

import (
	"fmt"
	"strings"
	"time"
)

// Record is a single address book entry: a name, an ordered list of
// phone numbers without duplicates, and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday Birthday
}

// NewRecord builds a record with the given name, initial phone numbers
// and birthday. Phones may be nil and the birthday may be the empty
// string; all given values are validated.
func NewRecord(name string, phones []string, birthday string) (*Record, error) {
	r := &Record{name: NewName(name)}
	for _, number := range phones {
		if err := r.AddPhone(number); err != nil {
			return nil, err
		}
	}
	if err := r.birthday.Set(birthday); err != nil {
		return nil, err
	}
	return r, nil
}

// Name returns the record's name.
func (r *Record) Name() string { return r.name.Value() }

// Phones returns the phone number values in their stored order.
func (r *Record) Phones() []string {
	numbers := make([]string, len(r.phones))
	for i, p := range r.phones {
		numbers[i] = p.Value()
	}
	return numbers
}

// AddPhone validates and appends a phone number. Adding a number that is
// already stored is a no-op, so repeated adds keep exactly one entry.
func (r *Record) AddPhone(number string) error {
	if _, ok := r.FindPhone(number); ok {
		return nil
	}
	phone, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone drops every phone whose value equals number. Removing a
// number that is not stored is a no-op.
func (r *Record) RemovePhone(number string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.Value() != number {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldNumber with newNumber,
// keeping its position in the list. The new number is validated before
// anything is overwritten, so a failed edit leaves the record unchanged.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	for i := range r.phones {
		if r.phones[i].Value() == oldNumber {
			return r.phones[i].Set(newNumber)
		}
	}
	return fmt.Errorf("%w: %q", ErrPhoneNotFound, oldNumber)
}

// FindPhone returns the first phone equal to number.
func (r *Record) FindPhone(number string) (Phone, bool) {
	for _, p := range r.phones {
		if p.Value() == number {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday validates and replaces the birthday.
func (r *Record) SetBirthday(value string) error {
	return r.birthday.Set(value)
}

// Birthday returns the birthday rendered as DD.MM.YYYY, or the empty
// string when unset.
func (r *Record) Birthday() string { return r.birthday.String() }

// DaysToBirthday computes the number of days from now to the next
// occurrence of the birthday's month and day: this year if it has not
// passed yet, otherwise next year. A birthday falling on the current
// date yields 0. ok is false when no birthday is set.
func (r *Record) DaysToBirthday(now time.Time) (days int, ok bool) {
	if !r.birthday.IsSet() {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	date := r.birthday.Date()
	next := time.Date(today.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if today.After(next) {
		next = time.Date(today.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(today).Hours() / 24), true
}

// String renders the record as a single human-readable line.
func (r *Record) String() string {
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name.Value(), strings.Join(r.Phones(), "; "), r.birthday)
}
