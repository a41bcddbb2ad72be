package memoryengine

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/shelfkeeper/lending-catalog-go/catalog"
)

const (
	logMsgRecordAppended = "record appended"
	logMsgScanCompleted  = "scan completed for: "
	logAttrRecordID      = "record_id"
	logAttrRecordCount   = "record_count"
	logAttrMatchCount    = "match_count"
	logAttrDurationMS    = "duration_ms"
	logActionSearch      = "search"
)

// Store is an in-memory storage engine for a catalog.Collection.
// It preserves insertion order, permits duplicates, and guards the record
// sequence with a read-write mutex so it can be shared by concurrent callers.
type Store struct {
	mu      sync.RWMutex
	records []*catalog.Record
	logger  catalog.Logger
}

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels:
//
// Debug level: scans with execution timing (development use)
// Info level: record appends.
func WithLogger(logger catalog.Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// NewStore creates a new in-memory Store with optional configuration.
func NewStore(options ...Option) (*Store, error) {
	store := &Store{}

	for _, option := range options {
		if err := option(store); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// Add appends the record to the end of the stored sequence.
// The sequence only grows; there is no duplicate check and no eviction.
func (s *Store) Add(ctx context.Context, record *catalog.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if record == nil {
		return catalog.ErrNilRecord
	}

	s.mu.Lock()
	s.records = append(s.records, record)
	recordCount := len(s.records)
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info(logMsgRecordAppended, logAttrRecordID, record.ID().String(), logAttrRecordCount, recordCount)
	}

	return nil
}

// Search scans the stored sequence in insertion order and returns the records
// matching the given filter. Re-querying re-scans the sequence.
func (s *Store) Search(ctx context.Context, filter catalog.Filter) ([]*catalog.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	s.mu.RLock()
	matches := make([]*catalog.Record, 0, len(s.records))
	for _, record := range s.records {
		if filter.Matches(record) {
			matches = append(matches, record)
		}
	}
	s.mu.RUnlock()

	s.logScanWithDuration(logActionSearch, len(matches), time.Since(start))

	return matches, nil
}

// logScanWithDuration logs scans with execution time at debug level if the logger is configured.
func (s *Store) logScanWithDuration(action string, matchCount int, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgScanCompleted+action, logAttrMatchCount, matchCount, logAttrDurationMS, durationToMilliseconds(duration))
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// Ensure Store implements catalog.Storage.
var _ catalog.Storage = (*Store)(nil)
