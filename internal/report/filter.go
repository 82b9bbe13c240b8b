package report

import "strings"

// Filter returns the records whose searchable fields contain query as a
// case-folded substring. An empty or all-whitespace query returns the
// input slice unchanged, same elements and order. The fields accessor
// yields the searchable values for a record; absent values should come
// back as empty strings, which never match a non-empty query.
//
// Filtering is a pure predicate: it never mutates records, and applying
// the same query to an already-filtered result is a no-op.
func Filter[T any](records []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		for _, field := range fields(r) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
