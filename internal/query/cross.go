package query

import "stridedb/internal/record"

// CrossJoin is the Cartesian product of an outer and an inner iterator:
// textbook nested loops, with the outer scanned once and the inner
// rewound for every outer record. Cost counters sum both children.
//
// The output is sequential-only: it cannot be rewound or indexed.
type CrossJoin struct {
	outer Iterator
	inner RewindableIterator

	schema   *record.TableSchema
	currentA []record.Field
	outerOK  bool
}

// Cross builds the product of outer and inner. The inner must be
// rewindable since it is replayed once per outer record. The first
// outer record is pulled eagerly so Next can drive the inner directly.
func Cross(outer Iterator, inner RewindableIterator) *CrossJoin {
	c := &CrossJoin{
		outer:  outer,
		inner:  inner,
		schema: record.ConcatSchemas("cross-join", outer.Schema(), inner.Schema()),
	}
	c.currentA, c.outerOK = outer.Next()
	return c
}

// Next yields the concatenation of the current outer record with the
// next inner record, advancing the outer and rewinding the inner when
// the inner side is exhausted.
func (c *CrossJoin) Next() ([]record.Field, bool) {
	for {
		if !c.outerOK {
			return nil, false
		}
		if b, ok := c.inner.Next(); ok {
			return concat(c.currentA, b), true
		}
		c.currentA, c.outerOK = c.outer.Next()
		c.inner.Rewind()
	}
}

func (c *CrossJoin) Schema() *record.TableSchema {
	return c.schema
}

func (c *CrossJoin) BlocksAccessed() int {
	return c.outer.BlocksAccessed() + c.inner.BlocksAccessed()
}

func (c *CrossJoin) RecordsAccessed() int {
	return c.outer.RecordsAccessed() + c.inner.RecordsAccessed()
}
