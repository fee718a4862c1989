package record

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// maxTextBytes is the longest text payload the one-byte length prefix
// can describe.
const maxTextBytes = 255

// EncodeRecord writes each value into its declared range of buf, which
// must be at least entry-stride bytes. Bytes outside declared field
// ranges are left untouched; callers are expected to hand in a zeroed
// buffer so that slack bytes after a text payload stay deterministic.
func EncodeRecord(values []Field, fields []FieldSchema, buf []byte) error {
	if len(values) != len(fields) {
		return fmt.Errorf("record: got %d values for %d fields", len(values), len(fields))
	}
	for i, field := range fields {
		value := values[i]
		if value.Type != field.DataType {
			return &TypeError{Index: i, Actual: value.Type, Expected: field.DataType}
		}
		fieldBuf := buf[field.Offset : field.Offset+field.Length]
		switch value.Type {
		case IntegerType:
			binary.BigEndian.PutUint32(fieldBuf, value.Int)
		case TextType:
			if len(value.Text) > maxTextBytes {
				return &LengthError{Index: i, Actual: len(value.Text), Max: maxTextBytes}
			}
			fieldBuf[0] = byte(len(value.Text))
			copy(fieldBuf[1:], value.Text)
		}
	}
	return nil
}

// DecodeRecord is the inverse of EncodeRecord: it reads one value per
// field schema out of buf. Only declared field ranges are read.
func DecodeRecord(fields []FieldSchema, buf []byte) ([]Field, error) {
	values := make([]Field, 0, len(fields))
	for i, field := range fields {
		fieldBuf := buf[field.Offset : field.Offset+field.Length]
		switch field.DataType {
		case IntegerType:
			values = append(values, Integer(binary.BigEndian.Uint32(fieldBuf)))
		case TextType:
			n := int(fieldBuf[0])
			// The write side caps payloads at Length-1 bytes; a larger
			// length byte means slack garbage, not data.
			if limit := field.Length - 1; n > limit {
				n = limit
			}
			text := fieldBuf[1 : 1+n]
			if !utf8.Valid(text) {
				return nil, &ValueError{Index: i}
			}
			values = append(values, Text(string(text)))
		}
	}
	return values, nil
}
