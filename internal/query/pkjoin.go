package query

import "stridedb/internal/record"

// PrimaryKeyJoin joins each outer record against the inner record whose
// row index the key function extracts: index nested loops over the
// inner's random access. Outer records with no key, or with a key past
// the inner's end, are dropped. Cost counters sum both children.
type PrimaryKeyJoin struct {
	outer  Iterator
	inner  RandomAccessIterator
	keyFn  KeyFunc
	schema *record.TableSchema
}

// PKJoin builds an index-nested-loops join of outer against inner.
func PKJoin(outer Iterator, inner RandomAccessIterator, keyFn KeyFunc) *PrimaryKeyJoin {
	return &PrimaryKeyJoin{
		outer:  outer,
		inner:  inner,
		keyFn:  keyFn,
		schema: record.ConcatSchemas("pk-join", outer.Schema(), inner.Schema()),
	}
}

// Next advances the outer side until a record with a resolvable key is
// found and yields it concatenated with its inner match.
func (j *PrimaryKeyJoin) Next() ([]record.Field, bool) {
	for {
		a, ok := j.outer.Next()
		if !ok {
			return nil, false
		}
		k, ok := j.keyFn(a)
		if !ok || k < 0 {
			continue
		}
		b, ok := j.inner.Idx(k)
		if !ok {
			continue
		}
		return concat(a, b), true
	}
}

func (j *PrimaryKeyJoin) Schema() *record.TableSchema {
	return j.schema
}

func (j *PrimaryKeyJoin) BlocksAccessed() int {
	return j.outer.BlocksAccessed() + j.inner.BlocksAccessed()
}

func (j *PrimaryKeyJoin) RecordsAccessed() int {
	return j.outer.RecordsAccessed() + j.inner.RecordsAccessed()
}
