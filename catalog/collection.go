package catalog

import (
	"context"
	"errors"
	"strings"
)

const (
	logMsgRecordAdded     = "record added"
	logMsgSearchCompleted = "search completed"
	logMsgAddFailed       = "adding record to storage failed"
	logMsgSearchFailed    = "searching records in storage failed"
	logMsgOperation       = "collection operation: "
	logAttrError          = "error"
	logAttrRecordID       = "record_id"
	logAttrTitle          = "title"
	logAttrMatchCount     = "match_count"
)

// Storage is the engine interface a Collection operates on.
//
// Add appends a record to the end of the stored sequence. Search returns the
// records matching the filter, preserving insertion order.
type Storage interface {
	Add(ctx context.Context, record *Record) error
	Search(ctx context.Context, filter Filter) ([]*Record, error)
}

// Collection manages an ordered sequence of records on top of a Storage
// engine and offers lookup and listing operations.
//
// The sequence only grows: records are appended by AddRecord, duplicates are
// permitted, and no eviction or deletion exists. Availability is mutated on
// the records themselves, through Record.Borrow and Record.Return.
type Collection struct {
	storage          Storage
	logger           Logger
	contextualLogger ContextualLogger
}

// Option defines a functional option for configuring a Collection.
type Option func(*Collection) error

// WithLogger sets the logger for the Collection.
// The logger will receive messages at different levels:
//
// Debug level: per-operation detail such as match counts
// Info level: record additions
// Error level: storage failures.
func WithLogger(logger Logger) Option {
	return func(c *Collection) error {
		c.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Collection.
// When set, it is preferred over the plain logger for all messages.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(c *Collection) error {
		c.contextualLogger = logger
		return nil
	}
}

// NewCollection creates a new Collection using the given Storage engine with
// optional configuration.
func NewCollection(storage Storage, options ...Option) (Collection, error) {
	if storage == nil {
		return Collection{}, ErrNilStorage
	}

	collection := Collection{
		storage: storage,
	}

	for _, option := range options {
		if err := option(&collection); err != nil {
			return Collection{}, err
		}
	}

	return collection, nil
}

// AddRecord appends the record to the end of the collection.
//
// There is no duplicate check: adding the same title, author or ISBN twice
// results in two independent copies.
func (c Collection) AddRecord(ctx context.Context, record *Record) error {
	if record == nil {
		return ErrNilRecord
	}

	if err := c.storage.Add(ctx, record); err != nil {
		c.logError(ctx, logMsgAddFailed, logAttrError, err.Error(), logAttrRecordID, record.ID().String())

		return errors.Join(ErrAddingRecordFailed, err)
	}

	c.logOperation(ctx, logMsgRecordAdded, logAttrRecordID, record.ID().String(), logAttrTitle, record.Title())

	return nil
}

// FindByTitle scans the collection in insertion order and returns the first
// record whose title matches case-insensitively.
//
// It returns ErrRecordNotFound when no record matches; an empty or
// whitespace-only title never matches.
func (c Collection) FindByTitle(ctx context.Context, title string) (*Record, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrRecordNotFound
	}

	filter := BuildRecordFilter().
		Matching().
		AnyTitleOf(title).
		Finalize()

	matches, err := c.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, ErrRecordNotFound
	}

	return matches[0], nil
}

// ListAvailable returns the records that can currently be borrowed, in
// insertion order. The result is materialized: calling it again re-scans the
// collection.
func (c Collection) ListAvailable(ctx context.Context) ([]*Record, error) {
	filter := BuildRecordFilter().
		Matching().
		OnlyAvailable().
		Finalize()

	return c.Search(ctx, filter)
}

// ListAll returns every record in the collection in insertion order.
func (c Collection) ListAll(ctx context.Context) ([]*Record, error) {
	return c.Search(ctx, BuildRecordFilter().MatchingAnyRecord())
}

// Count returns the number of records in the collection.
func (c Collection) Count(ctx context.Context) (int, error) {
	records, err := c.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

// Search returns the records matching the given filter, preserving insertion
// order among the matches.
func (c Collection) Search(ctx context.Context, filter Filter) ([]*Record, error) {
	matches, err := c.storage.Search(ctx, filter)
	if err != nil {
		c.logError(ctx, logMsgSearchFailed, logAttrError, err.Error())

		return nil, errors.Join(ErrSearchingRecordsFailed, err)
	}

	c.logDebug(ctx, logMsgOperation+logMsgSearchCompleted, logAttrMatchCount, len(matches))

	return matches, nil
}

// logOperation logs operational information at info level if a logger is configured.
func (c Collection) logOperation(ctx context.Context, msg string, args ...any) {
	switch {
	case c.contextualLogger != nil:
		c.contextualLogger.InfoContext(ctx, logMsgOperation+msg, args...)
	case c.logger != nil:
		c.logger.Info(logMsgOperation+msg, args...)
	}
}

// logDebug logs per-operation detail at debug level if a logger is configured.
func (c Collection) logDebug(ctx context.Context, msg string, args ...any) {
	switch {
	case c.contextualLogger != nil:
		c.contextualLogger.DebugContext(ctx, msg, args...)
	case c.logger != nil:
		c.logger.Debug(msg, args...)
	}
}

// logError logs failures at error level if a logger is configured.
func (c Collection) logError(ctx context.Context, msg string, args ...any) {
	switch {
	case c.contextualLogger != nil:
		c.contextualLogger.ErrorContext(ctx, msg, args...)
	case c.logger != nil:
		c.logger.Error(msg, args...)
	}
}
