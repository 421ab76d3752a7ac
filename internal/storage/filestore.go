package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gitlab.com/dirk.krummacker/address-book/internal/model"
)

// FileStore persists the address book as a JSON file. Writes go through
// a temporary file and a rename, so a crash mid-write leaves the
// previous snapshot intact.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the full book state, replacing any previous content.
func (s *FileStore) Save(book model.Book) error {
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	if _, err = tmp.Write(data); err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err == nil {
		err = os.Rename(tmp.Name(), s.path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	return nil
}

// Load reads the last saved state. A missing, unreadable or corrupt file
// is indistinguishable from a first run and yields an empty book.
func (s *FileStore) Load() (model.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.Book{}, nil
	}
	var book model.Book
	if err := json.Unmarshal(data, &book); err != nil {
		return model.Book{}, nil
	}
	return book, nil
}
