package model

import (
	"iter"
	"slices"
	"strings"
)

// defaultRecordsPerPage is the page size used when a caller does not
// request one.
const defaultRecordsPerPage = 3

// AddressBook is an insertion-ordered collection of records keyed by
// name. It is not safe for concurrent use; callers serialize access.
type AddressBook struct {
	index   map[string]int
	records []*Record

	// RecordsPerPage is the batch size used by Pages when the caller
	// does not pass one.
	RecordsPerPage int

	// CurrentRecord is carried and persisted for compatibility with
	// existing snapshots but is never read or advanced.
	CurrentRecord int

	onMutation func()
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		index:          make(map[string]int),
		RecordsPerPage: defaultRecordsPerPage,
	}
}

// SetOnMutation registers a hook invoked after every state change, for
// example to persist the book. Add and Delete fire it themselves;
// callers that mutate an individual record report via NotifyMutation.
func (b *AddressBook) SetOnMutation(fn func()) { b.onMutation = fn }

// NotifyMutation fires the mutation hook, if one is registered.
func (b *AddressBook) NotifyMutation() {
	if b.onMutation != nil {
		b.onMutation()
	}
}

// Add inserts a record keyed by its name. If a record with the same name
// already exists the call is a no-op and the existing record is kept.
func (b *AddressBook) Add(r *Record) {
	if _, ok := b.index[r.Name()]; ok {
		return
	}
	b.index[r.Name()] = len(b.records)
	b.records = append(b.records, r)
	b.NotifyMutation()
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.records[i], true
}

// Delete removes the record stored under name, keeping the order of the
// remaining records. Deleting an absent name is a no-op.
func (b *AddressBook) Delete(name string) {
	i, ok := b.index[name]
	if !ok {
		return
	}
	delete(b.index, name)
	b.records = slices.Delete(b.records, i, i+1)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].Name()] = j
	}
	b.NotifyMutation()
}

// Len returns the number of stored records.
func (b *AddressBook) Len() int { return len(b.records) }

// Records returns the stored records in insertion order.
func (b *AddressBook) Records() []*Record {
	return slices.Clone(b.records)
}

// Pages returns a single-use sequence of record batches of up to
// batchSize records each, in insertion order. A batchSize below 1 falls
// back to RecordsPerPage. The records are snapshotted when iteration
// starts, so mutating the book while iterating does not change the
// batches already being produced.
func (b *AddressBook) Pages(batchSize int) iter.Seq[[]*Record] {
	return func(yield func([]*Record) bool) {
		size := batchSize
		if size < 1 {
			size = b.RecordsPerPage
		}
		snapshot := slices.Clone(b.records)
		for start := 0; start < len(snapshot); start += size {
			end := min(start+size, len(snapshot))
			if !yield(snapshot[start:end]) {
				return
			}
		}
	}
}

// Search returns every record whose name contains term
// case-insensitively, or that stores a phone number containing term, in
// insertion order.
func (b *AddressBook) Search(term string) []*Record {
	term = strings.ToLower(term)
	var results []*Record
	for _, r := range b.records {
		if strings.Contains(strings.ToLower(r.Name()), term) {
			results = append(results, r)
			continue
		}
		for _, number := range r.Phones() {
			if strings.Contains(number, term) {
				results = append(results, r)
				break
			}
		}
	}
	return results
}
