package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"stridedb/internal/record"
)

// Sentinel categories for open failures. Callers match them with
// errors.Is; the wrapped cause carries the detail.
var (
	// ErrOpenIO means data.bin or schema.json could not be opened or read.
	ErrOpenIO = errors.New("open table files")
	// ErrSchemaParse means schema.json is not well-formed JSON.
	ErrSchemaParse = errors.New("parse schema document")
	// ErrSchemaDecode means schema.json is valid JSON but not a table schema.
	ErrSchemaDecode = errors.New("decode table schema")
)

const (
	dataFileName   = "data.bin"
	schemaFileName = "schema.json"
)

// Table pairs a validated schema with its open data file.
//
// The handle owns the descriptor until Close. A live iterator borrows the
// handle exclusively: no Append may be issued while a Scan obtained from
// Iter is still in use, since both move the same file cursor.
type Table struct {
	Schema record.TableSchema
	file   *os.File
}

func tablePath(dbPath, name string) string {
	return filepath.Join(dbPath, "tables", name)
}

// Create makes the table directory, an empty data file, and the schema
// document under dbPath. The caller is expected to have already run
// record.ValidateSchema; Create does not re-validate.
func Create(dbPath string, schema *record.TableSchema) error {
	dir := tablePath(dbPath, schema.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("table: create dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, dataFileName))
	if err != nil {
		return fmt.Errorf("table: create data file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("table: close data file: %w", err)
	}

	data, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("table: marshal schema: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, schemaFileName), data, 0o644); err != nil {
		return fmt.Errorf("table: write schema: %w", err)
	}

	return nil
}

// Open resolves dbPath/tables/<name>/, opens the data file read/write
// (it must already exist) and decodes the schema document.
func Open(dbPath, name string) (*Table, error) {
	dir := tablePath(dbPath, name)

	f, err := os.OpenFile(filepath.Join(dir, dataFileName), os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("table: %w: %w", ErrOpenIO, err)
	}

	schemaData, err := os.ReadFile(filepath.Join(dir, schemaFileName))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("table: %w: %w", ErrOpenIO, err)
	}

	// Distinguish malformed JSON from JSON that does not describe a schema.
	var raw json.RawMessage
	if err := json.Unmarshal(schemaData, &raw); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("table: %w: %w", ErrSchemaParse, err)
	}

	var schema record.TableSchema
	if err := json.Unmarshal(raw, &schema); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("table: %w: %w", ErrSchemaDecode, err)
	}

	return &Table{Schema: schema, file: f}, nil
}

// Append encodes values into a zeroed stride-sized buffer and writes it
// at end-of-file. Codec errors are returned before the file is touched.
func (t *Table) Append(values []record.Field) error {
	buf := make([]byte, t.Schema.EntryStride)
	if err := record.EncodeRecord(values, t.Schema.Fields, buf); err != nil {
		return err
	}

	if _, err := t.file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("table: seek end: %w", err)
	}
	if _, err := t.file.Write(buf); err != nil {
		return fmt.Errorf("table: write entry: %w", err)
	}

	return nil
}

// Iter returns a fresh scan over the table. The record count is derived
// from the current file size; a trailing partial record is ignored.
func (t *Table) Iter() (*Scan, error) {
	info, err := t.file.Stat()
	if err != nil {
		return nil, fmt.Errorf("table: stat data file: %w", err)
	}
	length := int(info.Size() / int64(t.Schema.EntryStride))
	return newScan(t, length), nil
}

// Close releases the data file descriptor.
func (t *Table) Close() error {
	if err := t.file.Close(); err != nil {
		return fmt.Errorf("table: close: %w", err)
	}
	return nil
}
