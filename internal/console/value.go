// Package console implements the record-management engine behind the admin
// console: filtering, sorting, multi-selection, bulk actions, and CSV export
// over any of the four record kinds. Everything here is pure and in-memory;
// persistence stays behind the domain repositories.
package console

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// ValueKind discriminates the closed set of field value shapes the engine
// understands.
type ValueKind int

const (
	ValueAbsent ValueKind = iota
	ValueString
	ValueNumber
	ValueTime
	ValueList
)

// Value is a tagged variant holding one record field. Accessor maps produce
// Values so the engine never indexes records by string at runtime.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	ts   time.Time
	list []string
}

// Absent is the value of a field a record kind does not carry.
func Absent() Value { return Value{kind: ValueAbsent} }

// String wraps a string field value.
func String(s string) Value { return Value{kind: ValueString, str: s} }

// Number wraps a numeric field value.
func Number(n float64) Value { return Value{kind: ValueNumber, num: n} }

// Time wraps a timestamp field value.
func Time(t time.Time) Value { return Value{kind: ValueTime, ts: t} }

// List wraps a string-sequence field value.
func List(items []string) Value { return Value{kind: ValueList, list: items} }

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// TimeValue returns the wrapped timestamp; zero unless Kind is ValueTime.
func (v Value) TimeValue() time.Time { return v.ts }

const exportTimeLayout = "01/02/2006 15:04"

// text renders the value the way the export and search paths see it: lists
// joined with "; ", timestamps in MM/DD/YYYY HH:mm, absent as empty string.
func (v Value) text() string {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueTime:
		return v.ts.Format(exportTimeLayout)
	case ValueList:
		return strings.Join(v.list, "; ")
	}
	return ""
}

// matches reports whether the folded rendering of v contains the already
// folded query. Absent values never match.
func (v Value) matches(foldedQuery string) bool {
	if v.kind == ValueAbsent {
		return false
	}
	return strings.Contains(fold(v.text()), foldedQuery)
}

// Compare orders two values: absent sorts before anything present, times by
// instant, numbers numerically, strings and lists case-insensitively.
func (v Value) Compare(other Value) int {
	if v.kind == ValueAbsent || other.kind == ValueAbsent {
		switch {
		case v.kind == other.kind:
			return 0
		case v.kind == ValueAbsent:
			return -1
		default:
			return 1
		}
	}
	if v.kind == ValueTime && other.kind == ValueTime {
		switch {
		case v.ts.Before(other.ts):
			return -1
		case v.ts.After(other.ts):
			return 1
		default:
			return 0
		}
	}
	if v.kind == ValueNumber && other.kind == ValueNumber {
		switch {
		case v.num < other.num:
			return -1
		case v.num > other.num:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fold(v.text()), fold(other.text()))
}

// fold lowercases s using full Unicode case folding. cases.Caser carries
// internal state, so a fresh one is taken per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
