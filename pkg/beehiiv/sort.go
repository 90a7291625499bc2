package beehiiv

import (
	"cmp"
	"slices"
)

// isDateOrderField reports whether orderBy is one of the date-bearing sort
// fields whose ordering SortPostsByDate repairs.
func isDateOrderField(orderBy string) bool {
	switch orderBy {
	case OrderByCreated, OrderByPublishDate, OrderByDisplayedDate:
		return true
	}
	return false
}

// SortPostsByDate re-sorts one page of posts by a date field so the
// requested ordering holds even when the API returned the page out of order.
// It is a pure function of the page it receives; it never fetches more data,
// so ordering across pages stays whatever the API produced.
//
// Posts are partitioned into those carrying the field (present, non-null)
// and those without it, preserving relative order within each group. The
// dated group is stable-sorted by the field's raw value: numeric timestamps
// numerically, ISO-8601 strings lexicographically as-is, no timezone
// normalization. Under desc the undated group goes last (newest first,
// unknowns sink); under asc it goes first (unknowns surface as "earliest").
//
// An unrecognized orderBy returns posts unchanged. Elements that are not
// JSON objects count as lacking the field.
func SortPostsByDate(posts []any, orderBy, direction string) []any {
	if !isDateOrderField(orderBy) {
		return posts
	}

	withValue := make([]any, 0, len(posts))
	withoutValue := make([]any, 0, len(posts))
	for _, post := range posts {
		if _, ok := dateValue(post, orderBy); ok {
			withValue = append(withValue, post)
		} else {
			withoutValue = append(withoutValue, post)
		}
	}

	descending := direction == DirectionDesc
	slices.SortStableFunc(withValue, func(a, b any) int {
		av, _ := dateValue(a, orderBy)
		bv, _ := dateValue(b, orderBy)
		c := compareDateValues(av, bv)
		if descending {
			return -c
		}
		return c
	})

	if descending {
		return append(withValue, withoutValue...)
	}
	return append(withoutValue, withValue...)
}

// dateValue extracts the sort field from a post. The second return is false
// when the post is not an object or the field is absent or null.
func dateValue(post any, field string) (any, bool) {
	obj, ok := post.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// compareDateValues orders raw date values. JSON numbers (Unix timestamps)
// compare numerically and order before strings; strings (ISO-8601 dates)
// compare lexicographically; values of any other type order after both and
// compare equal among themselves.
func compareDateValues(a, b any) int {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
		return -1
	case string:
		switch bv := b.(type) {
		case float64:
			return 1
		case string:
			return cmp.Compare(av, bv)
		default:
			return -1
		}
	default:
		switch b.(type) {
		case float64, string:
			return 1
		default:
			return 0
		}
	}
}
