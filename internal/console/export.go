package console

import (
	"strings"
	"time"
)

// Column pairs a CSV header with the accessor producing its cells.
type Column[T any] struct {
	Header string
	Value  Accessor[T]
}

// Serialize renders records as delimited text: an unquoted header row of
// display names, then one row per record with every cell double-quoted and
// embedded quotes doubled, so any standard CSV reader round-trips the values.
// Same inputs always produce byte-identical output.
func Serialize[T any](records []T, cols []Column[T]) string {
	var b strings.Builder

	for i, col := range cols {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(col.Header)
	}

	for _, rec := range records {
		b.WriteByte('\n')
		for i, col := range cols {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(col.Value(rec).text(), `"`, `""`))
			b.WriteByte('"')
		}
	}

	return b.String()
}

// ExportFilename names a download after its base and the export date,
// e.g. "volunteers-2026-08-28.csv".
func ExportFilename(base string, now time.Time) string {
	return base + "-" + now.Format("2006-01-02") + ".csv"
}
