package metrics

import (
	"sort"

	"exec-dashboard-go/internal/dates"
	"exec-dashboard-go/internal/types"
)

// Dated is any record carrying a canonical ISO activity date.
type Dated interface {
	ActivityDate() string
}

// FilterByDateRange keeps records whose date falls inside [from, to],
// inclusive. An unparsable or inverted range disables filtering rather
// than erroring: a usable full-range dashboard beats a hard failure on
// bad query parameters.
func FilterByDateRange[T Dated](rows []T, from, to string) []T {
	fromDate, okFrom := dates.ParseISODate(from)
	toDate, okTo := dates.ParseISODate(to)
	if !okFrom || !okTo || fromDate.After(toDate) {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		d, ok := dates.ParseISODate(r.ActivityDate())
		if !ok {
			continue
		}
		if !d.Before(fromDate) && !d.After(toDate) {
			out = append(out, r)
		}
	}
	return out
}

// AggregateBy groups rows by a derived key and returns counts sorted
// descending. Empty keys collapse into "Unknown". Ties keep first-seen
// key order so output is deterministic despite map iteration.
func AggregateBy[T any](rows []T, key func(T) string) []types.KeyCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range rows {
		k := key(r)
		if k == "" {
			k = "Unknown"
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]types.KeyCount, 0, len(order))
	for _, k := range order {
		out = append(out, types.KeyCount{Key: k, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// AggregateByDate buckets rows by their exact date string, ascending.
func AggregateByDate[T Dated](rows []T) []types.TimeSeriesPoint {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.ActivityDate()]++
	}
	return seriesFromCounts(counts)
}

func seriesFromCounts(counts map[string]int) []types.TimeSeriesPoint {
	out := make([]types.TimeSeriesPoint, 0, len(counts))
	for d, c := range counts {
		out = append(out, types.TimeSeriesPoint{Date: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func topN(list []types.KeyCount, n int) []types.KeyCount {
	if len(list) > n {
		return list[:n]
	}
	return list
}
