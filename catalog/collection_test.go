package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfkeeper/lending-catalog-go/catalog"
	"github.com/shelfkeeper/lending-catalog-go/catalog/memoryengine"
)

func Test_NewCollection_FailsWithNilStorage(t *testing.T) {
	// act
	_, err := catalog.NewCollection(nil)

	// assert
	assert.ErrorIs(t, err, catalog.ErrNilStorage)
}

func Test_AddRecord_FailsWithNilRecord(t *testing.T) {
	// arrange
	collection := givenEmptyCollection(t)

	// act
	err := collection.AddRecord(context.Background(), nil)

	// assert
	assert.ErrorIs(t, err, catalog.ErrNilRecord)
}

func Test_AddRecord_PermitsDuplicates(t *testing.T) {
	// arrange
	ctx := context.Background()
	collection := givenEmptyCollection(t)

	// act - the same title/author/ISBN added twice results in two copies
	require.NoError(t, collection.AddRecord(ctx, catalog.BuildRecord("Dune", "Frank Herbert", "978-0-441-17271-9")))
	require.NoError(t, collection.AddRecord(ctx, catalog.BuildRecord("Dune", "Frank Herbert", "978-0-441-17271-9")))

	// assert
	count, err := collection.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func Test_FindByTitle_ReturnsFirstMatchInInsertionOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	collection := givenEmptyCollection(t)

	first := catalog.BuildRecord("1984", "George Orwell", "copy-1")
	second := catalog.BuildRecord("Brave New World", "Aldous Huxley", "978-0-06-085052-4")
	third := catalog.BuildRecord("1984", "George Orwell", "copy-2")

	require.NoError(t, collection.AddRecord(ctx, first))
	require.NoError(t, collection.AddRecord(ctx, second))
	require.NoError(t, collection.AddRecord(ctx, third))

	// act
	match, err := collection.FindByTitle(ctx, "1984")

	// assert - the first copy in insertion order wins
	require.NoError(t, err)
	assert.Same(t, first, match)
}

func Test_FindByTitle_MatchesCaseInsensitively(t *testing.T) {
	// arrange
	ctx := context.Background()
	collection := givenEmptyCollection(t)

	record := catalog.BuildRecord("Brave New World", "Aldous Huxley", "978-0-06-085052-4")
	require.NoError(t, collection.AddRecord(ctx, record))

	// act
	match, err := collection.FindByTitle(ctx, "bRaVe NeW wOrLd")

	// assert
	require.NoError(t, err)
	assert.Same(t, record, match)
}

func Test_FindByTitle_ReturnsNotFoundForUnknownTitle(t *testing.T) {
	// arrange
	ctx := context.Background()
	collection := givenEmptyCollection(t)

	require.NoError(t, collection.AddRecord(ctx, catalog.BuildRecord("1984", "George Orwell", "978-0-452-28423-4")))

	// act
	match, err := collection.FindByTitle(ctx, "nonexistent")

	// assert
	assert.ErrorIs(t, err, catalog.ErrRecordNotFound)
	assert.Nil(t, match)
}

func Test_FindByTitle_ReturnsNotFoundForEmptyTitle(t *testing.T) {
	// arrange
	ctx := context.Background()
	collection := givenEmptyCollection(t)

	require.NoError(t, collection.AddRecord(ctx, catalog.BuildRecord("1984", "George Orwell", "978-0-452-28423-4")))

	// act
	_, err := collection.FindByTitle(ctx, "   ")

	// assert
	assert.ErrorIs(t, err, catalog.ErrRecordNotFound)
}

func Test_ListAvailable_FiltersBorrowedRecordsPreservingOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	collection := givenEmptyCollection(t)

	first := catalog.BuildRecord("1984", "George Orwell", "978-0-452-28423-4")
	second := catalog.BuildRecord("Brave New World", "Aldous Huxley", "978-0-06-085052-4")
	third := catalog.BuildRecord("Dune", "Frank Herbert", "978-0-441-17271-9")

	require.NoError(t, collection.AddRecord(ctx, first))
	require.NoError(t, collection.AddRecord(ctx, second))
	require.NoError(t, collection.AddRecord(ctx, third))

	require.NoError(t, second.Borrow())

	// act
	available, err := collection.ListAvailable(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []*catalog.Record{first, third}, available)
}

func Test_ListAvailable_RequeryReflectsReturnedRecords(t *testing.T) {
	// arrange
	ctx := context.Background()
	collection := givenEmptyCollection(t)

	record := catalog.BuildRecord("1984", "George Orwell", "978-0-452-28423-4")
	require.NoError(t, collection.AddRecord(ctx, record))
	require.NoError(t, record.Borrow())

	available, err := collection.ListAvailable(ctx)
	require.NoError(t, err)
	require.Empty(t, available)

	// act - a re-query re-scans the collection
	record.Return()

	available, err = collection.ListAvailable(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []*catalog.Record{record}, available)
}

func Test_ListAll_ReturnsRecordsInInsertionOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	collection := givenEmptyCollection(t)

	records := []*catalog.Record{
		catalog.BuildRecord("1984", "George Orwell", "978-0-452-28423-4"),
		catalog.BuildRecord("Brave New World", "Aldous Huxley", "978-0-06-085052-4"),
		catalog.BuildRecord("Dune", "Frank Herbert", "978-0-441-17271-9"),
	}

	for _, record := range records {
		require.NoError(t, collection.AddRecord(ctx, record))
	}

	// act
	listed, err := collection.ListAll(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, records, listed)
}

func Test_Search_CombinesTitleAndAvailabilityFacets(t *testing.T) {
	// arrange
	ctx := context.Background()
	collection := givenEmptyCollection(t)

	availableCopy := catalog.BuildRecord("1984", "George Orwell", "copy-1")
	borrowedCopy := catalog.BuildRecord("1984", "George Orwell", "copy-2")

	require.NoError(t, collection.AddRecord(ctx, availableCopy))
	require.NoError(t, collection.AddRecord(ctx, borrowedCopy))
	require.NoError(t, borrowedCopy.Borrow())

	filter := catalog.BuildRecordFilter().
		Matching().
		AnyTitleOf("1984").
		AndOnlyAvailable().
		Finalize()

	// act
	matches, err := collection.Search(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []*catalog.Record{availableCopy}, matches)
}

func Test_WithContextualLogger_IsPreferredOverPlainLogger(t *testing.T) {
	// arrange
	ctx := context.Background()

	store, err := memoryengine.NewStore()
	require.NoError(t, err)

	plain := &recordingLogger{}
	contextual := &recordingContextualLogger{}

	collection, err := catalog.NewCollection(
		store,
		catalog.WithLogger(plain),
		catalog.WithContextualLogger(contextual),
	)
	require.NoError(t, err)

	// act
	require.NoError(t, collection.AddRecord(ctx, catalog.BuildRecord("1984", "George Orwell", "978-0-452-28423-4")))

	// assert
	assert.NotEmpty(t, contextual.infoMessages, "the contextual logger must receive the operation log")
	assert.Empty(t, plain.infoMessages, "the plain logger must not be used when a contextual logger is set")
}

type recordingLogger struct {
	infoMessages []string
}

func (l *recordingLogger) Debug(_ string, _ ...any) {}
func (l *recordingLogger) Info(msg string, _ ...any) {
	l.infoMessages = append(l.infoMessages, msg)
}
func (l *recordingLogger) Warn(_ string, _ ...any)  {}
func (l *recordingLogger) Error(_ string, _ ...any) {}

type recordingContextualLogger struct {
	infoMessages []string
}

func (l *recordingContextualLogger) DebugContext(_ context.Context, _ string, _ ...any) {}
func (l *recordingContextualLogger) InfoContext(_ context.Context, msg string, _ ...any) {
	l.infoMessages = append(l.infoMessages, msg)
}
func (l *recordingContextualLogger) WarnContext(_ context.Context, _ string, _ ...any)  {}
func (l *recordingContextualLogger) ErrorContext(_ context.Context, _ string, _ ...any) {}

func givenEmptyCollection(t *testing.T) catalog.Collection {
	t.Helper()

	store, err := memoryengine.NewStore()
	require.NoError(t, err)

	collection, err := catalog.NewCollection(store)
	require.NoError(t, err)

	return collection
}
