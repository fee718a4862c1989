// Package query implements relational operators as composable iterators.
//
// Every operator consumes iterators and is itself an iterator, so trees
// of operators can be built and their cumulative I/O cost read off the
// root. Capabilities are layered as small interfaces: a plain Iterator
// yields records sequentially, a RewindableIterator can restart, and a
// RandomAccessIterator can fetch records by index. Operator constructors
// state the capabilities they need in their parameter types; a physical
// table scan satisfies all three.
package query

import "stridedb/internal/record"

// Iterator is a lazy cursor over a sequence of records that also
// reports its cumulative I/O cost.
type Iterator interface {
	// Next returns the next record, or false when the sequence is done.
	Next() ([]record.Field, bool)

	// Schema describes the records the iterator yields.
	Schema() *record.TableSchema

	// BlocksAccessed returns the cumulative number of block reads.
	BlocksAccessed() int

	// RecordsAccessed returns the cumulative number of records read.
	RecordsAccessed() int
}

// RewindableIterator can reset its cursor to the first record without
// rebuilding state. Counters keep accumulating across rewinds.
type RewindableIterator interface {
	Iterator
	Rewind()
}

// RandomAccessIterator can fetch the record at a 0-based index.
type RandomAccessIterator interface {
	Iterator

	// Len returns the total number of records.
	Len() int

	// Idx returns the record at index i, or false when i is out of range.
	Idx(i int) ([]record.Field, bool)
}

// Predicate decides whether a record passes a filter. Predicates are
// closures over the caller's environment, typically field positions
// obtained from TableSchema.MapField.
type Predicate func(values []record.Field) bool

// KeyFunc extracts a row index from an outer record for a primary-key
// join. Returning false skips the record.
type KeyFunc func(values []record.Field) (int, bool)

// concat joins an outer and an inner record into one output record.
// The outer prefix is copied so one outer record can be reused across
// many inner records; the inner suffix is appended as-is.
func concat(outer, inner []record.Field) []record.Field {
	out := make([]record.Field, 0, len(outer)+len(inner))
	out = append(out, outer...)
	return append(out, inner...)
}
