package record

import "fmt"

// ValidateSchema checks a schema against the layout invariants before a
// table is created: every field fits inside the entry stride, integer
// fields are exactly 4 bytes, text fields fit a one-byte length prefix,
// and no two fields overlap. Gaps between fields are permitted.
func ValidateSchema(schema *TableSchema) error {
	used := make([]bool, schema.EntryStride)

	for _, field := range schema.Fields {
		if field.Offset < 0 || field.Length < 0 {
			return fmt.Errorf("record: field %q has a negative offset or length", field.Name)
		}
		if field.Offset+field.Length > schema.EntryStride {
			return fmt.Errorf("record: field %q exceeds the entry stride", field.Name)
		}

		switch field.DataType {
		case IntegerType:
			if field.Length != 4 {
				return fmt.Errorf("record: field %q is Integer and must have length 4", field.Name)
			}
		case TextType:
			if field.Length > maxTextBytes+1 {
				return fmt.Errorf("record: field %q is Text and must have length of at most %d",
					field.Name, maxTextBytes+1)
			}
		default:
			return fmt.Errorf("record: field %q has unknown type %d", field.Name, int(field.DataType))
		}

		for pos := field.Offset; pos < field.Offset+field.Length; pos++ {
			if used[pos] {
				return fmt.Errorf("record: field %q overlaps another field", field.Name)
			}
			used[pos] = true
		}
	}

	return nil
}
