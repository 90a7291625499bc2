package beehiiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// datedPost builds a post carrying the given publish_date value.
func datedPost(id float64, publishDate any) map[string]any {
	return map[string]any{"id": id, "publish_date": publishDate}
}

// undatedPost builds a post without the publish_date key.
func undatedPost(id float64) map[string]any {
	return map[string]any{"id": id}
}

// postIDs extracts the id field from each post, in order.
func postIDs(t *testing.T, posts []any) []float64 {
	t.Helper()
	ids := make([]float64, 0, len(posts))
	for _, p := range posts {
		obj, ok := p.(map[string]any)
		require.True(t, ok, "post is not an object: %v", p)
		id, ok := obj["id"].(float64)
		require.True(t, ok, "post has no numeric id: %v", p)
		ids = append(ids, id)
	}
	return ids
}

func TestSortPostsByDate_DescNullLast(t *testing.T) {
	posts := []any{
		datedPost(1, nil),
		datedPost(2, "2024-01-01"),
		datedPost(3, "2024-03-01"),
	}

	sorted := SortPostsByDate(posts, OrderByPublishDate, DirectionDesc)
	assert.Equal(t, []float64{3, 2, 1}, postIDs(t, sorted))
}

func TestSortPostsByDate_AscNullFirst(t *testing.T) {
	posts := []any{
		datedPost(1, nil),
		datedPost(2, "2024-01-01"),
		datedPost(3, "2024-03-01"),
	}

	sorted := SortPostsByDate(posts, OrderByPublishDate, DirectionAsc)
	assert.Equal(t, []float64{1, 2, 3}, postIDs(t, sorted))
}

func TestSortPostsByDate_MissingKeyTreatedAsUndated(t *testing.T) {
	posts := []any{
		undatedPost(1),
		datedPost(2, "2024-06-15T10:00:00Z"),
		undatedPost(3),
		datedPost(4, "2024-06-20T10:00:00Z"),
	}

	sorted := SortPostsByDate(posts, OrderByPublishDate, DirectionDesc)
	assert.Equal(t, []float64{4, 2, 1, 3}, postIDs(t, sorted))

	sorted = SortPostsByDate(posts, OrderByPublishDate, DirectionAsc)
	assert.Equal(t, []float64{1, 3, 2, 4}, postIDs(t, sorted))
}

func TestSortPostsByDate_UnrecognizedFieldUnchanged(t *testing.T) {
	posts := []any{
		datedPost(2, "2024-01-01"),
		datedPost(1, "2024-05-01"),
		datedPost(3, "2024-03-01"),
	}

	sorted := SortPostsByDate(posts, "title", DirectionDesc)
	assert.Equal(t, []float64{2, 1, 3}, postIDs(t, sorted))
}

func TestSortPostsByDate_IdempotentOnOrderedPage(t *testing.T) {
	posts := []any{
		datedPost(3, "2024-03-01"),
		datedPost(2, "2024-01-01"),
		datedPost(1, nil),
	}

	once := SortPostsByDate(posts, OrderByPublishDate, DirectionDesc)
	twice := SortPostsByDate(once, OrderByPublishDate, DirectionDesc)
	assert.Equal(t, postIDs(t, once), postIDs(t, twice))
	assert.Equal(t, []float64{3, 2, 1}, postIDs(t, twice))
}

func TestSortPostsByDate_StableForEqualKeys(t *testing.T) {
	posts := []any{
		datedPost(1, "2024-01-01"),
		datedPost(2, "2024-01-01"),
		datedPost(3, "2024-01-01"),
	}

	sorted := SortPostsByDate(posts, OrderByPublishDate, DirectionDesc)
	assert.Equal(t, []float64{1, 2, 3}, postIDs(t, sorted))

	sorted = SortPostsByDate(posts, OrderByPublishDate, DirectionAsc)
	assert.Equal(t, []float64{1, 2, 3}, postIDs(t, sorted))
}

func TestSortPostsByDate_NumericTimestamps(t *testing.T) {
	posts := []any{
		map[string]any{"id": float64(1), "created": float64(1700000000)},
		map[string]any{"id": float64(2), "created": float64(1800000000)},
		map[string]any{"id": float64(3), "created": float64(1600000000)},
	}

	sorted := SortPostsByDate(posts, OrderByCreated, DirectionDesc)
	assert.Equal(t, []float64{2, 1, 3}, postIDs(t, sorted))

	sorted = SortPostsByDate(posts, OrderByCreated, DirectionAsc)
	assert.Equal(t, []float64{3, 1, 2}, postIDs(t, sorted))
}

func TestSortPostsByDate_NumbersOrderBeforeStrings(t *testing.T) {
	posts := []any{
		datedPost(1, "2024-01-01"),
		datedPost(2, float64(1700000000)),
	}

	sorted := SortPostsByDate(posts, OrderByPublishDate, DirectionAsc)
	assert.Equal(t, []float64{2, 1}, postIDs(t, sorted))

	sorted = SortPostsByDate(posts, OrderByPublishDate, DirectionDesc)
	assert.Equal(t, []float64{1, 2}, postIDs(t, sorted))
}

func TestSortPostsByDate_NonObjectElementsSinkWithUndated(t *testing.T) {
	posts := []any{
		"not an object",
		datedPost(2, "2024-01-01"),
	}

	sorted := SortPostsByDate(posts, OrderByPublishDate, DirectionDesc)
	require.Len(t, sorted, 2)
	assert.Equal(t, datedPost(2, "2024-01-01"), sorted[0])
	assert.Equal(t, "not an object", sorted[1])
}

func TestSortPostsByDate_EmptyStringCountsAsPresent(t *testing.T) {
	// Only absent or null values count as undated; an empty string is a raw
	// value and sorts lexicographically before any date.
	posts := []any{
		datedPost(1, "2024-01-01"),
		datedPost(2, ""),
	}

	sorted := SortPostsByDate(posts, OrderByPublishDate, DirectionAsc)
	assert.Equal(t, []float64{2, 1}, postIDs(t, sorted))
}

func TestSortPostsByDate_EmptyPage(t *testing.T) {
	assert.Empty(t, SortPostsByDate(nil, OrderByPublishDate, DirectionDesc))
	assert.Empty(t, SortPostsByDate([]any{}, OrderByCreated, DirectionAsc))
}

func TestSortPostsByDate_DisplayedDateRecognized(t *testing.T) {
	posts := []any{
		map[string]any{"id": float64(1), "displayed_date": "2024-02-01"},
		map[string]any{"id": float64(2), "displayed_date": "2024-04-01"},
	}

	sorted := SortPostsByDate(posts, OrderByDisplayedDate, DirectionDesc)
	assert.Equal(t, []float64{2, 1}, postIDs(t, sorted))
}
