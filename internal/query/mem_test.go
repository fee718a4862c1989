package query

import "stridedb/internal/record"

// memIterator is an in-memory table iterator with the full capability
// surface, used to exercise operators without touching disk. Records
// are deep-copied on the way out so tests cannot mutate stored rows.
// Every materialized record counts toward RecordsAccessed; blocks stay
// at zero since nothing is read from a file.
type memIterator struct {
	schema  *record.TableSchema
	rows    [][]record.Field
	i       int
	records int
}

func newMemIterator(schema *record.TableSchema, rows [][]record.Field) *memIterator {
	return &memIterator{schema: schema, rows: rows}
}

func (m *memIterator) Next() ([]record.Field, bool) {
	values, ok := m.Idx(m.i)
	if !ok {
		return nil, false
	}
	m.i++
	return values, true
}

func (m *memIterator) Idx(i int) ([]record.Field, bool) {
	if i < 0 || i >= len(m.rows) {
		return nil, false
	}
	m.records++
	out := make([]record.Field, len(m.rows[i]))
	copy(out, m.rows[i])
	return out, true
}

func (m *memIterator) Rewind() {
	m.i = 0
}

func (m *memIterator) Len() int {
	return len(m.rows)
}

func (m *memIterator) Schema() *record.TableSchema {
	return m.schema
}

func (m *memIterator) BlocksAccessed() int {
	return 0
}

func (m *memIterator) RecordsAccessed() int {
	return m.records
}

// Compile-time capability checks shared by the tests.
var (
	_ RewindableIterator   = (*memIterator)(nil)
	_ RandomAccessIterator = (*memIterator)(nil)
)
