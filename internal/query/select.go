package query

import "stridedb/internal/record"

// Select filters a base iterator through a predicate. Schema and cost
// counters pass through to the base.
type Select struct {
	base Iterator
	cond Predicate
}

// NewSelect wraps base so that only records satisfying cond are yielded.
func NewSelect(base Iterator, cond Predicate) *Select {
	return &Select{base: base, cond: cond}
}

// Next pulls records from the base until one satisfies the predicate.
func (s *Select) Next() ([]record.Field, bool) {
	for {
		values, ok := s.base.Next()
		if !ok {
			return nil, false
		}
		if s.cond(values) {
			return values, true
		}
	}
}

func (s *Select) Schema() *record.TableSchema {
	return s.base.Schema()
}

func (s *Select) BlocksAccessed() int {
	return s.base.BlocksAccessed()
}

func (s *Select) RecordsAccessed() int {
	return s.base.RecordsAccessed()
}
