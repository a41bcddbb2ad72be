package catalog

import (
	"slices"
	"strings"
)

type FilterTermString = string

/***** Filter *****/

// Filter defines the criteria a record search matches against.
// An empty Filter (no items) matches every record.
type Filter struct {
	items []FilterItem
}

func (f Filter) Items() []FilterItem {
	return f.items
}

// Matches reports whether the given record satisfies the filter.
// A record matches when ANY FilterItem matches it.
func (f Filter) Matches(record *Record) bool {
	if len(f.items) == 0 {
		return true
	}

	for _, item := range f.items {
		if item.matches(record) {
			return true
		}
	}

	return false
}

/***** FilterItem *****/

// FilterItem is one search branch of a Filter. Within an item the configured
// facets must ALL hold, while the terms of a single facet match with OR.
// All term comparison is case-insensitive.
type FilterItem struct {
	titles        []FilterTermString
	authors       []FilterTermString
	isbns         []FilterTermString
	onlyAvailable bool
}

func (fi FilterItem) Titles() []FilterTermString {
	return fi.titles
}

func (fi FilterItem) Authors() []FilterTermString {
	return fi.authors
}

func (fi FilterItem) ISBNs() []FilterTermString {
	return fi.isbns
}

func (fi FilterItem) OnlyAvailable() bool {
	return fi.onlyAvailable
}

func (fi FilterItem) matches(record *Record) bool {
	if len(fi.titles) > 0 && !slices.Contains(fi.titles, strings.ToLower(record.Title())) {
		return false
	}

	if len(fi.authors) > 0 && !slices.Contains(fi.authors, strings.ToLower(record.Author())) {
		return false
	}

	if len(fi.isbns) > 0 && !slices.Contains(fi.isbns, strings.ToLower(record.ISBN())) {
		return false
	}

	if fi.onlyAvailable && !record.IsAvailable() {
		return false
	}

	return true
}

/***** FilterBuilder *****/

// FilterBuilder builds a generic record filter to be interpreted by the
// storage engine backing a Collection.
// It is designed with the idea to only allow "useful" filter combinations
// for catalog searches:
//
//   - empty filter
//   - (title OR title...)
//   - (author OR author...)
//   - (isbn OR isbn...)
//   - (onlyAvailable)
//   - ((title OR title...) AND (author OR author...) AND onlyAvailable)
//   - ((title AND onlyAvailable) OR (author AND onlyAvailable)...) -> multiple FilterItem(s)
type FilterBuilder interface {
	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// MatchingAnyRecord directly creates an empty Filter.
	MatchingAnyRecord() Filter
}

type EmptyFilterItemBuilder interface {
	// AnyTitleOf adds one or multiple title terms to the current FilterItem.
	//
	// It sanitizes the input:
	//	- removing empty terms ("")
	//	- folding terms to lower case
	//	- sorting the terms
	//	- removing duplicate terms
	AnyTitleOf(title FilterTermString, titles ...FilterTermString) FilterItemBuilder

	// AnyAuthorOf adds one or multiple author terms to the current FilterItem,
	// sanitized like AnyTitleOf.
	AnyAuthorOf(author FilterTermString, authors ...FilterTermString) FilterItemBuilder

	// AnyISBNOf adds one or multiple ISBN terms to the current FilterItem,
	// sanitized like AnyTitleOf.
	AnyISBNOf(isbn FilterTermString, isbns ...FilterTermString) FilterItemBuilder

	// OnlyAvailable restricts the current FilterItem to records that can
	// currently be borrowed.
	OnlyAvailable() FilterItemBuilder
}

type FilterItemBuilder interface {
	// AndAnyTitleOf adds one or multiple title terms to the current FilterItem,
	// sanitized like EmptyFilterItemBuilder.AnyTitleOf.
	AndAnyTitleOf(title FilterTermString, titles ...FilterTermString) FilterItemBuilder

	// AndAnyAuthorOf adds one or multiple author terms to the current FilterItem.
	AndAnyAuthorOf(author FilterTermString, authors ...FilterTermString) FilterItemBuilder

	// AndAnyISBNOf adds one or multiple ISBN terms to the current FilterItem.
	AndAnyISBNOf(isbn FilterTermString, isbns ...FilterTermString) FilterItemBuilder

	// AndOnlyAvailable restricts the current FilterItem to available records.
	AndOnlyAvailable() FilterItemBuilder

	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter once the current FilterItem is complete.
	Finalize() Filter
}

// filterBuilder implements all the interfaces of FilterBuilder
type filterBuilder struct {
	filter            Filter
	currentFilterItem FilterItem
}

// BuildRecordFilter creates a FilterBuilder which must eventually be finalized
// with Finalize() or MatchingAnyRecord().
func BuildRecordFilter() FilterBuilder {
	return filterBuilder{}
}

// Matching starts a new FilterItem.
func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentFilterItem = FilterItem{}

	return fb
}

// MatchingAnyRecord directly creates an empty filter.
func (fb filterBuilder) MatchingAnyRecord() Filter {
	return fb.filter
}

// AnyTitleOf adds one or multiple title terms to the current FilterItem.
func (fb filterBuilder) AnyTitleOf(title FilterTermString, titles ...FilterTermString) FilterItemBuilder {
	fb.currentFilterItem.titles = append(
		fb.currentFilterItem.titles,
		sanitizeTerms(title, titles...)...,
	)

	return fb
}

// AndAnyTitleOf adds one or multiple title terms to the current FilterItem.
func (fb filterBuilder) AndAnyTitleOf(title FilterTermString, titles ...FilterTermString) FilterItemBuilder {
	return fb.AnyTitleOf(title, titles...)
}

// AnyAuthorOf adds one or multiple author terms to the current FilterItem.
func (fb filterBuilder) AnyAuthorOf(author FilterTermString, authors ...FilterTermString) FilterItemBuilder {
	fb.currentFilterItem.authors = append(
		fb.currentFilterItem.authors,
		sanitizeTerms(author, authors...)...,
	)

	return fb
}

// AndAnyAuthorOf adds one or multiple author terms to the current FilterItem.
func (fb filterBuilder) AndAnyAuthorOf(author FilterTermString, authors ...FilterTermString) FilterItemBuilder {
	return fb.AnyAuthorOf(author, authors...)
}

// AnyISBNOf adds one or multiple ISBN terms to the current FilterItem.
func (fb filterBuilder) AnyISBNOf(isbn FilterTermString, isbns ...FilterTermString) FilterItemBuilder {
	fb.currentFilterItem.isbns = append(
		fb.currentFilterItem.isbns,
		sanitizeTerms(isbn, isbns...)...,
	)

	return fb
}

// AndAnyISBNOf adds one or multiple ISBN terms to the current FilterItem.
func (fb filterBuilder) AndAnyISBNOf(isbn FilterTermString, isbns ...FilterTermString) FilterItemBuilder {
	return fb.AnyISBNOf(isbn, isbns...)
}

// OnlyAvailable restricts the current FilterItem to available records.
func (fb filterBuilder) OnlyAvailable() FilterItemBuilder {
	fb.currentFilterItem.onlyAvailable = true

	return fb
}

// AndOnlyAvailable restricts the current FilterItem to available records.
func (fb filterBuilder) AndOnlyAvailable() FilterItemBuilder {
	return fb.OnlyAvailable()
}

// OrMatching finalizes the current FilterItem and starts a new one.
func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter.items = append(fb.filter.items, fb.currentFilterItem)
	fb.currentFilterItem = FilterItem{}

	return fb
}

// Finalize returns the Filter once the current FilterItem is complete.
func (fb filterBuilder) Finalize() Filter {
	fb.filter.items = append(fb.filter.items, fb.currentFilterItem)

	return fb.filter
}

func sanitizeTerms(term FilterTermString, terms ...FilterTermString) []FilterTermString {
	allTerms := append([]FilterTermString{term}, terms...)

	for i := range allTerms {
		allTerms[i] = strings.ToLower(allTerms[i])
	}

	allTerms = slices.DeleteFunc(
		allTerms,
		func(t FilterTermString) bool {
			return t == ""
		})
	slices.Sort(allTerms)
	allTerms = slices.Compact(allTerms)
	allTerms = slices.Clip(allTerms)

	return allTerms
}
