package record

import (
	"encoding/json"
	"fmt"
)

// FieldType represents the logical type of a value in a field.
type FieldType int

const (
	IntegerType FieldType = iota
	TextType
)

// String returns the wire tag of the type, which doubles as its display name.
func (t FieldType) String() string {
	switch t {
	case IntegerType:
		return "IntegerType"
	case TextType:
		return "TextType"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// MarshalJSON encodes the type as its variant tag string.
func (t FieldType) MarshalJSON() ([]byte, error) {
	switch t {
	case IntegerType, TextType:
		return json.Marshal(t.String())
	default:
		return nil, fmt.Errorf("record: unknown field type %d", int(t))
	}
}

// UnmarshalJSON decodes a variant tag string back into a FieldType.
func (t *FieldType) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	switch tag {
	case "IntegerType":
		*t = IntegerType
	case "TextType":
		*t = TextType
	default:
		return fmt.Errorf("record: unknown field type tag %q", tag)
	}
	return nil
}

// Field represents a single cell in a record (one field in one row).
// Only the member matching Type is meaningful.
type Field struct {
	Type FieldType

	Int  uint32 // for IntegerType
	Text string // for TextType
}

// Integer builds an integer field value.
func Integer(v uint32) Field {
	return Field{Type: IntegerType, Int: v}
}

// Text builds a text field value.
func Text(s string) Field {
	return Field{Type: TextType, Text: s}
}

// String formats the value for display.
func (f Field) String() string {
	switch f.Type {
	case IntegerType:
		return fmt.Sprintf("%d", f.Int)
	case TextType:
		return f.Text
	default:
		return "?"
	}
}

// Equal compares two field values, considering their type.
func (f Field) Equal(other Field) bool {
	if f.Type != other.Type {
		return false
	}
	switch f.Type {
	case IntegerType:
		return f.Int == other.Int
	case TextType:
		return f.Text == other.Text
	default:
		return false
	}
}

// FieldSchema describes one field of a table: where it lives inside an
// entry and how it is encoded.
type FieldSchema struct {
	Name     string    `json:"name"`
	Offset   int       `json:"offset"`
	DataType FieldType `json:"data_type"`
	Length   int       `json:"length"`
}

// TableSchema is the sole source of truth for a table's on-disk layout.
type TableSchema struct {
	Name        string        `json:"name"`
	Fields      []FieldSchema `json:"fields"`
	EntryStride int           `json:"entry_stride"`
}

// MapField returns the position of the first field named name.
func (s *TableSchema) MapField(name string) (int, bool) {
	for i, f := range s.Fields {
		if f.Name == name {
			return i, true
		}
	}
	return 0, false
}

// ConcatSchemas builds the logical output schema of a two-sided operator:
// every field of a keeps its offset and is renamed "<a.Name>.<field>",
// every field of b is renamed "<b.Name>.<field>" and shifted by a's stride.
// The result is used for field lookup by name; concatenated records are
// never re-serialized with it.
func ConcatSchemas(name string, a, b *TableSchema) *TableSchema {
	fields := make([]FieldSchema, 0, len(a.Fields)+len(b.Fields))
	for _, f := range a.Fields {
		f.Name = a.Name + "." + f.Name
		fields = append(fields, f)
	}
	for _, f := range b.Fields {
		f.Name = b.Name + "." + f.Name
		f.Offset += a.EntryStride
		fields = append(fields, f)
	}
	return &TableSchema{
		Name:        name,
		Fields:      fields,
		EntryStride: a.EntryStride + b.EntryStride,
	}
}
