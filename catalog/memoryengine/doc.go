// Package memoryengine provides an in-memory storage implementation of the
// catalog.Storage interface.
//
// The engine keeps records in an append-only slice guarded by a single
// read-write mutex, so one Store may be shared by concurrent callers.
// Insertion order is preserved and duplicates are permitted; searches scan
// the sequence in order and interpret catalog.Filter in-process.
//
// Basic usage:
//
//	store, err := memoryengine.NewStore(
//		memoryengine.WithLogger(logger),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	collection, err := catalog.NewCollection(store)
package memoryengine
