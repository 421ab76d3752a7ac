package model

import "errors"

var (
	// ErrInvalidPhoneFormat reports a phone number that is neither empty
	// nor exactly 10 decimal digits.
	ErrInvalidPhoneFormat = errors.New("invalid phone number format")

	// ErrInvalidDateFormat reports a birthday that is neither empty nor a
	// real calendar date in the form DD.MM.YYYY.
	ErrInvalidDateFormat = errors.New("invalid date format, use DD.MM.YYYY")

	// ErrPhoneNotFound reports an edit of a phone number that is not
	// stored on the record.
	ErrPhoneNotFound = errors.New("phone number not found")
)
