package storage

import (
	"errors"

	"gitlab.com/dirk.krummacker/address-book/internal/model"
)

// ErrPersistenceUnavailable reports that a save could not reach the
// backing store. Loads never return it: a missing or unreadable store is
// indistinguishable from a first run and yields an empty book.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// Store persists the full state of an address book. Save overwrites any
// previously stored state. Load returns the most recent state, or an
// empty book when nothing usable is stored.
type Store interface {
	Save(book model.Book) error
	Load() (model.Book, error)
}
