package model

// RecordData is the wire and persistence representation of a single
// record. The birthday is rendered as DD.MM.YYYY or is the empty string
// when unset.
type RecordData struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday"`
}

// Book is the full persisted state of an address book. Records are kept
// as an ordered array so that a reloaded book pages through its records
// in the same order as the original.
type Book struct {
	RecordsPerPage int          `json:"records_per_page"`
	CurrentRecord  int          `json:"current_record"`
	Records        []RecordData `json:"records"`
}

// Data returns the record's serializable form.
func (r *Record) Data() RecordData {
	return RecordData{
		Name:     r.Name(),
		Phones:   r.Phones(),
		Birthday: r.Birthday(),
	}
}

// RecordFromData builds a record from its serializable form.
func RecordFromData(data RecordData) (*Record, error) {
	return NewRecord(data.Name, data.Phones, data.Birthday)
}

// Snapshot returns the book's full serializable state in insertion
// order.
func (b *AddressBook) Snapshot() Book {
	book := Book{
		RecordsPerPage: b.RecordsPerPage,
		CurrentRecord:  b.CurrentRecord,
	}
	for _, r := range b.records {
		book.Records = append(book.Records, r.Data())
	}
	return book
}

// FromSnapshot builds an address book from persisted state. A malformed
// record makes the whole snapshot unusable.
func FromSnapshot(book Book) (*AddressBook, error) {
	b := NewAddressBook()
	if book.RecordsPerPage > 0 {
		b.RecordsPerPage = book.RecordsPerPage
	}
	b.CurrentRecord = book.CurrentRecord
	for _, data := range book.Records {
		r, err := RecordFromData(data)
		if err != nil {
			return nil, err
		}
		b.Add(r)
	}
	return b, nil
}
