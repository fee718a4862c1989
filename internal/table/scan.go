package table

import (
	"fmt"
	"io"

	"stridedb/internal/record"
)

// BlockSize is the number of contiguous records a scan reads per
// filesystem call.
const BlockSize = 10

// Scan is a block-buffered iterator over a table's records.
//
// It keeps a window of up to BlockSize contiguous records in memory and
// serves reads from it, reloading when an access falls outside the
// window. BlocksAccessed and RecordsAccessed accumulate over the scan's
// lifetime and are never reset, so higher-level operators can observe
// the I/O cost of a plan.
//
// A filesystem or decode failure mid-scan means the file was corrupted
// or truncated underneath the iterator; there is no principled partial
// recovery, so those failures panic.
type Scan struct {
	table  *Table
	i      int // next index for sequential reads
	length int

	// current window covers [base, limit); valid only when loaded
	loaded bool
	base   int
	limit  int
	block  []byte

	blocks  int
	records int
}

func newScan(t *Table, length int) *Scan {
	return &Scan{
		table:  t,
		length: length,
		block:  make([]byte, BlockSize*t.Schema.EntryStride),
	}
}

// loadBlock refetches the window starting at record i.
func (s *Scan) loadBlock(i int) {
	stride := s.table.Schema.EntryStride
	s.loaded = false

	if _, err := s.table.file.Seek(int64(i*stride), io.SeekStart); err != nil {
		panic(fmt.Errorf("table: scan seek: %w", err))
	}
	n, err := io.ReadFull(s.table.file, s.block)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	if err != nil {
		panic(fmt.Errorf("table: scan read block: %w", err))
	}

	loadedRecords := n / stride
	if loadedRecords < 1 {
		panic(fmt.Errorf("table: scan read no complete record at index %d of %d", i, s.length))
	}

	s.loaded = true
	s.base = i
	s.limit = i + loadedRecords
	s.blocks++
}

// Idx returns the record at index i, or false when i is outside [0, Len()).
// An access outside the current window reloads it starting at i.
func (s *Scan) Idx(i int) ([]record.Field, bool) {
	if i < 0 || i >= s.length {
		return nil, false
	}

	if !s.loaded || i < s.base || i >= s.limit {
		s.loadBlock(i)
	}

	stride := s.table.Schema.EntryStride
	entryBase := (i - s.base) * stride
	values, err := record.DecodeRecord(s.table.Schema.Fields, s.block[entryBase:entryBase+stride])
	if err != nil {
		panic(fmt.Errorf("table: scan decode record %d: %w", i, err))
	}

	s.records++
	return values, true
}

// Next returns the record at the cursor and advances it.
func (s *Scan) Next() ([]record.Field, bool) {
	values, ok := s.Idx(s.i)
	if !ok {
		return nil, false
	}
	s.i++
	return values, true
}

// Rewind resets the cursor to the first record. The window and the
// counters are left as-is: rewinding costs nothing by itself, and the
// first access after it reloads only if the window no longer covers 0.
func (s *Scan) Rewind() {
	s.i = 0
}

// Len returns the total number of records in the table.
func (s *Scan) Len() int {
	return s.length
}

// Schema returns the table schema.
func (s *Scan) Schema() *record.TableSchema {
	return &s.table.Schema
}

// BlocksAccessed returns the number of window reloads so far.
func (s *Scan) BlocksAccessed() int {
	return s.blocks
}

// RecordsAccessed returns the number of records materialized so far.
func (s *Scan) RecordsAccessed() int {
	return s.records
}
