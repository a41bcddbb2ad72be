package catalog

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Status is the human-readable availability label of a Record.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusBorrowed  Status = "Borrowed"
)

// Record represents a single lendable item with identity and availability state.
//
// Title, author and ISBN are immutable after construction; only the
// availability flag changes, through Borrow and Return. Each record carries
// its own copy ID so that duplicate title/author/ISBN combinations in a
// collection stay distinguishable.
//
// A Record must only be constructed with BuildRecord and must not be copied
// after construction; all operations work on *Record.
type Record struct {
	id     uuid.UUID
	title  string
	author string
	isbn   string

	mu        sync.Mutex
	available bool
}

// BuildRecord is the factory method for Record.
//
// The new record is available for borrowing. Title, author and ISBN are
// accepted as given; no validation is performed on them.
func BuildRecord(title string, author string, isbn string) *Record {
	return &Record{
		id:        uuid.New(),
		title:     title,
		author:    author,
		isbn:      isbn,
		available: true,
	}
}

// ID returns the copy ID assigned at construction.
func (r *Record) ID() uuid.UUID {
	return r.id
}

// Title returns the title of the record.
func (r *Record) Title() string {
	return r.title
}

// Author returns the author of the record.
func (r *Record) Author() string {
	return r.author
}

// ISBN returns the ISBN-like identifier of the record.
func (r *Record) ISBN() string {
	return r.isbn
}

// IsAvailable reports whether the record can currently be borrowed.
func (r *Record) IsAvailable() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.available
}

// Status returns StatusAvailable or StatusBorrowed derived from the
// availability flag.
func (r *Record) Status() Status {
	if r.IsAvailable() {
		return StatusAvailable
	}

	return StatusBorrowed
}

// Describe produces a human-readable line combining title, author, ISBN and
// the current status label. It has no side effects.
func (r *Record) Describe() string {
	return fmt.Sprintf("%s by %s (ISBN: %s) - %s", r.title, r.author, r.isbn, r.Status())
}

// Borrow marks the record as borrowed.
//
// It returns ErrRecordAlreadyBorrowed without mutating the record when it is
// currently lent out; the caller decides how to proceed.
func (r *Record) Borrow() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.available {
		return ErrRecordAlreadyBorrowed
	}

	r.available = false

	return nil
}

// Return marks the record as available again.
//
// The transition is unconditional: returning a record that was never borrowed
// succeeds and leaves it available. Callers that need to detect such a double
// return must check IsAvailable first.
func (r *Record) Return() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.available = true
}
