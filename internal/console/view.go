package console

import (
	"fmt"
	"sort"
	"time"
)

// Accessor resolves one named field on a record.
type Accessor[T any] func(T) Value

// FieldMap enumerates the legal field names for a record kind. Lookups for
// names outside the map degrade to Absent rather than failing.
type FieldMap[T any] map[string]Accessor[T]

// DateRange limits a view to records created within a trailing window.
type DateRange int

const (
	RangeAll DateRange = iota
	RangeWeek
	RangeMonth
	RangeQuarter
)

// ParseDateRange maps the admin query parameter onto a DateRange.
func ParseDateRange(s string) (DateRange, error) {
	switch s {
	case "", "all":
		return RangeAll, nil
	case "week":
		return RangeWeek, nil
	case "month":
		return RangeMonth, nil
	case "quarter":
		return RangeQuarter, nil
	}
	return RangeAll, fmt.Errorf("unknown date range %q", s)
}

func (r DateRange) window() time.Duration {
	switch r {
	case RangeWeek:
		return 7 * 24 * time.Hour
	case RangeMonth:
		return 30 * 24 * time.Hour
	case RangeQuarter:
		return 90 * 24 * time.Hour
	}
	return 0
}

// SortDirection orders a view ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// ParseSortDirection maps the admin query parameter onto a SortDirection.
func ParseSortDirection(s string) (SortDirection, error) {
	switch s {
	case "", "desc":
		return Descending, nil
	case "asc":
		return Ascending, nil
	}
	return Descending, fmt.Errorf("unknown sort direction %q", s)
}

// ViewQuery carries the admin's current filter and sort state. It is plain
// data threaded by the caller; the engine holds nothing between calls.
type ViewQuery struct {
	Search       string
	SearchFields []string
	Range        DateRange
	SortField    string
	Direction    SortDirection
}

// CreatedAtField is the envelope field every record kind carries; the date
// window always keys off it.
const CreatedAtField = "createdAt"

// ComputeView filters and sorts records into the sequence the admin sees.
// The input slice is never mutated; identical inputs (including now) yield an
// identical output, and records with equal sort keys keep their input order.
func ComputeView[T any](records []T, fields FieldMap[T], q ViewQuery, now time.Time) []T {
	view := make([]T, 0, len(records))

	foldedQuery := ""
	if q.Search != "" {
		foldedQuery = fold(q.Search)
	}
	var cutoff time.Time
	if q.Range != RangeAll {
		cutoff = now.Add(-q.Range.window())
	}

	for _, rec := range records {
		if foldedQuery != "" && !matchesAny(rec, fields, q.SearchFields, foldedQuery) {
			continue
		}
		if q.Range != RangeAll {
			created := resolve(rec, fields, CreatedAtField)
			if created.Kind() != ValueTime || !created.TimeValue().After(cutoff) {
				continue
			}
		}
		view = append(view, rec)
	}

	if q.SortField != "" {
		sort.SliceStable(view, func(i, j int) bool {
			cmp := resolve(view[i], fields, q.SortField).Compare(resolve(view[j], fields, q.SortField))
			if q.Direction == Descending {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	return view
}

func matchesAny[T any](rec T, fields FieldMap[T], names []string, foldedQuery string) bool {
	for _, name := range names {
		if resolve(rec, fields, name).matches(foldedQuery) {
			return true
		}
	}
	return false
}

func resolve[T any](rec T, fields FieldMap[T], name string) Value {
	if accessor, ok := fields[name]; ok {
		return accessor(rec)
	}
	return Absent()
}
