package record

import "fmt"

// TypeError reports a value whose type does not match its field schema.
type TypeError struct {
	Index    int
	Actual   FieldType
	Expected FieldType
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("record: field %d has incorrect type: expected %s, got %s",
		e.Index, e.Expected, e.Actual)
}

// LengthError reports a text value longer than the encoding allows.
type LengthError struct {
	Index  int
	Actual int
	Max    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("record: field %d has incorrect length: at most %d bytes allowed, got %d",
		e.Index, e.Max, e.Actual)
}

// ValueError reports stored bytes that cannot be decoded as a valid value.
type ValueError struct {
	Index int
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("record: field %d contains invalid data", e.Index)
}
