package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"gitlab.com/dirk.krummacker/address-book/internal/model"
)

// SQLStore persists the address book in a relational database. Like the
// file store, Save replaces the full stored state so that the last full
// write wins.
type SQLStore struct {
	db *sqlx.DB
}

var _ Store = (*SQLStore)(nil)

// CreateDatabase initializes and returns a database connection. The
// connection parameters are taken from the system's environment
// variables.
func CreateDatabase() *sql.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/test?parseTime=true",
		os.Getenv("DBUSER"), os.Getenv("DBPWD"), os.Getenv("DBHOST"))
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	return sqlDB
}

// NewSQLStore wraps the specified sql database. The database argument
// can be a real database for production use or a mock database within
// unit tests.
func NewSQLStore(sqlDB *sql.DB) *SQLStore {
	return &SQLStore{db: sqlx.NewDb(sqlDB, "mysql")}
}

// row mirrors one line of the records table. The phone list is stored
// JSON-encoded so that empty numbers survive the round trip.
type row struct {
	Position int    `db:"position"`
	Name     string `db:"name"`
	Phones   string `db:"phones"`
	Birthday string `db:"birthday"`
}

// Save replaces all stored records and settings with the given state
// inside a single transaction.
func (s *SQLStore) Save(book model.Book) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	if err := saveAll(tx, book); err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	return nil
}

func saveAll(tx *sqlx.Tx, book model.Book) error {
	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM book_settings`); err != nil {
		return err
	}
	if _, err := tx.Exec(`
		INSERT INTO book_settings (records_per_page, current_record)
		VALUES (?, ?)
	`, book.RecordsPerPage, book.CurrentRecord); err != nil {
		return err
	}
	for i, record := range book.Records {
		phones, err := json.Marshal(record.Phones)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO records (position, name, phones, birthday)
			VALUES (?, ?, ?, ?)
		`, i, record.Name, string(phones), record.Birthday); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the last saved state. Any database failure, including
// missing tables or a missing settings row, is treated like a first run
// and yields an empty book.
func (s *SQLStore) Load() (model.Book, error) {
	var settings struct {
		RecordsPerPage int `db:"records_per_page"`
		CurrentRecord  int `db:"current_record"`
	}
	err := s.db.Get(&settings, `
		SELECT records_per_page, current_record FROM book_settings
	`)
	if err != nil {
		return model.Book{}, nil
	}
	var rows []row
	err = s.db.Select(&rows, `
		SELECT position, name, phones, birthday FROM records ORDER BY position
	`)
	if err != nil {
		return model.Book{}, nil
	}
	book := model.Book{
		RecordsPerPage: settings.RecordsPerPage,
		CurrentRecord:  settings.CurrentRecord,
	}
	for _, r := range rows {
		var phones []string
		if r.Phones != "" {
			if err := json.Unmarshal([]byte(r.Phones), &phones); err != nil {
				return model.Book{}, nil
			}
		}
		book.Records = append(book.Records, model.RecordData{
			Name:     r.Name,
			Phones:   phones,
			Birthday: r.Birthday,
		})
	}
	return book, nil
}
