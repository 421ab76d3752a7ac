package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPhoneValid checks that every well-formed 10-digit number is
// accepted and rendered back unchanged.
func TestPhoneValid(t *testing.T) {
	for _, number := range []string{"1234567890", "0000000000", "9876543210"} {
		phone, err := NewPhone(number)
		assert.NoError(t, err)
		assert.Equal(t, number, phone.Value())
		assert.Equal(t, number, phone.String())
	}
}

// TestPhoneEmptyIsUnset checks that the empty string is accepted as the
// "no value" sentinel.
func TestPhoneEmptyIsUnset(t *testing.T) {
	phone, err := NewPhone("")
	assert.NoError(t, err)
	assert.Equal(t, "", phone.Value())
}

// TestPhoneInvalid checks that any other non-empty string is rejected.
func TestPhoneInvalid(t *testing.T) {
	invalid := []string{
		"123",
		"12345678901",
		"123456789a",
		"12345 7890",
		"+420123456",
		"phone",
	}
	for _, number := range invalid {
		_, err := NewPhone(number)
		assert.ErrorIs(t, err, ErrInvalidPhoneFormat, "number: "+number)
	}
}

// TestPhoneSetKeepsValueOnRejection checks that a failed assignment
// leaves the previously stored value in place.
func TestPhoneSetKeepsValueOnRejection(t *testing.T) {
	phone, err := NewPhone("1234567890")
	assert.NoError(t, err)
	assert.ErrorIs(t, phone.Set("bad"), ErrInvalidPhoneFormat)
	assert.Equal(t, "1234567890", phone.Value())
}

// TestBirthdayRoundTrip checks that valid DD.MM.YYYY dates render back
// to the identical string.
func TestBirthdayRoundTrip(t *testing.T) {
	for _, date := range []string{"18.02.1990", "01.01.2000", "29.02.2020", "31.12.1999"} {
		birthday, err := NewBirthday(date)
		assert.NoError(t, err)
		assert.True(t, birthday.IsSet())
		assert.Equal(t, date, birthday.String())
	}
}

// TestBirthdayEmptyIsUnset checks that the empty string yields an unset
// birthday rendering as the empty string.
func TestBirthdayEmptyIsUnset(t *testing.T) {
	birthday, err := NewBirthday("")
	assert.NoError(t, err)
	assert.False(t, birthday.IsSet())
	assert.Equal(t, "", birthday.String())
}

// TestBirthdayInvalid checks that malformed patterns and impossible
// calendar dates are rejected.
func TestBirthdayInvalid(t *testing.T) {
	invalid := []string{
		"1990-02-18",
		"18/02/1990",
		"18.2.1990",
		"18.02.90",
		"31.02.2020",
		"32.01.2020",
		"01.13.2020",
		"garbage",
	}
	for _, date := range invalid {
		_, err := NewBirthday(date)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "date: "+date)
	}
}

// TestBirthdaySetKeepsValueOnRejection checks that a failed assignment
// leaves the previously stored date in place.
func TestBirthdaySetKeepsValueOnRejection(t *testing.T) {
	birthday, err := NewBirthday("18.02.1990")
	assert.NoError(t, err)
	assert.ErrorIs(t, birthday.Set("not a date"), ErrInvalidDateFormat)
	assert.Equal(t, "18.02.1990", birthday.String())
}

// TestNameAcceptsAnything checks that names carry no format constraint,
// including the empty string.
func TestNameAcceptsAnything(t *testing.T) {
	for _, value := range []string{"John", "", "Jane Doe", "42"} {
		name := NewName(value)
		assert.Equal(t, value, name.Value())
	}
}
