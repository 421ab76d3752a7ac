package model

// RecordData is the wire and persistence representation of a single
// address book record. The birthday is rendered as DD.MM.YYYY or is the
// empty string when unset.
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
