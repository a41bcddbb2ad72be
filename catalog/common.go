package catalog

import (
	"errors"
)

var ErrNilStorage = errors.New("nil storage supplied")
var ErrNilRecord = errors.New("nil record supplied")
var ErrRecordNotFound = errors.New("no record matches the given criteria")
var ErrRecordAlreadyBorrowed = errors.New("record is already borrowed")
var ErrAddingRecordFailed = errors.New("adding record to storage failed")
var ErrSearchingRecordsFailed = errors.New("searching records failed")
