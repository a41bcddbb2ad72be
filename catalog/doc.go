// Package catalog provides core abstractions and types for managing a
// collection of lendable records.
//
// This package defines the fundamental types used across different storage
// engines, including records, filters, the collection manager, and common
// error definitions.
//
// A Record is a single lendable item with immutable title, author and ISBN,
// and a mutable availability flag. A Collection holds records in insertion
// order (duplicates permitted) and offers lookup and listing operations on
// top of a Storage engine.
//
// The collection supports filtering of records based on:
//   - Titles (case-insensitive)
//   - Authors (case-insensitive)
//   - ISBNs (case-insensitive)
//   - Availability
//
// Key types:
//   - Record: a lendable item with identity and availability state
//   - Collection: the manager offering add/search/list operations
//   - Filter: defines criteria for searching records
//   - Storage: the engine interface a collection operates on
//
// Common usage pattern:
//
//	store, _ := memoryengine.NewStore()
//	collection, _ := catalog.NewCollection(store)
//
//	record := catalog.BuildRecord("1984", "George Orwell", "978-0-452-28423-4")
//	_ = collection.AddRecord(ctx, record)
//
//	match, err := collection.FindByTitle(ctx, "1984")
//	if err != nil {
//		// handle catalog.ErrRecordNotFound
//	}
//
//	if err := match.Borrow(); err != nil {
//		// handle catalog.ErrRecordAlreadyBorrowed
//	}
package catalog
