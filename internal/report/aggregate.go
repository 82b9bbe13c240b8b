// Package report holds the pure collection combinators shared by the
// dashboard and directory endpoints: revenue totals, most-recent
// orderings, department histograms and free-text filtering. Each page used
// to reimplement these inline; they are factored out here so they can be
// unit tested in isolation and never mutate their inputs.
package report

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

// SumAmounts totals the amount field across records. The amount accessor
// may return any fetched representation: numeric types sum directly,
// numeric-looking strings coerce, anything else counts as 0. Negative
// amounts pass through unclamped. An empty collection sums to 0.
func SumAmounts[T any](records []T, amount func(T) any) float64 {
	var total float64
	for _, r := range records {
		total += coerceNumber(amount(r))
	}
	return total
}

// MostRecent returns the n newest records ordered descending by the
// timestamp accessor, or fewer if the collection is smaller. Ties keep
// their original insertion order so output is deterministic for a fixed
// input. The input slice is left untouched.
func MostRecent[T any](records []T, n int, at func(T) time.Time) []T {
	if n <= 0 || len(records) == 0 {
		return []T{}
	}

	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return at(out[i]).After(at(out[j]))
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}

// GroupCount buckets records by the key accessor and counts each bucket.
// Records with an empty key are dropped rather than bucketed under a
// sentinel. An empty collection yields an empty, non-nil map.
func GroupCount[T any](records []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		counts[k]++
	}
	return counts
}

func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
