package table

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stridedb/internal/record"
)

func testSchema(name string) *record.TableSchema {
	return &record.TableSchema{
		Name: name,
		Fields: []record.FieldSchema{
			{Name: "id", Offset: 0, DataType: record.IntegerType, Length: 4},
			{Name: "nome", Offset: 4, DataType: record.TextType, Length: 20},
		},
		EntryStride: 24,
	}
}

// makeTable creates and opens a table populated with n sequential records.
func makeTable(t *testing.T, dbPath string, n int) *Table {
	t.Helper()
	schema := testSchema("t")
	require.NoError(t, record.ValidateSchema(schema))
	require.NoError(t, Create(dbPath, schema))

	tbl, err := Open(dbPath, "t")
	require.NoError(t, err)
	t.Cleanup(func() { _ = tbl.Close() })

	for i := 0; i < n; i++ {
		err := tbl.Append([]record.Field{
			record.Integer(uint32(i)),
			record.Text(fmt.Sprintf("r%d", i)),
		})
		require.NoError(t, err)
	}
	return tbl
}

func TestCreateLayout(t *testing.T) {
	dbPath := t.TempDir()
	require.NoError(t, Create(dbPath, testSchema("users")))

	dir := filepath.Join(dbPath, "tables", "users")
	data, err := os.Stat(filepath.Join(dir, "data.bin"))
	require.NoError(t, err)
	assert.Zero(t, data.Size())

	_, err = os.Stat(filepath.Join(dir, "schema.json"))
	require.NoError(t, err)
}

func TestOpenRoundTripsSchema(t *testing.T) {
	dbPath := t.TempDir()
	schema := testSchema("users")
	require.NoError(t, Create(dbPath, schema))

	tbl, err := Open(dbPath, "users")
	require.NoError(t, err)
	defer tbl.Close()

	assert.Equal(t, *schema, tbl.Schema)
}

func TestOpenErrors(t *testing.T) {
	dbPath := t.TempDir()

	t.Run("missing table", func(t *testing.T) {
		_, err := Open(dbPath, "nope")
		assert.ErrorIs(t, err, ErrOpenIO)
	})

	t.Run("malformed schema document", func(t *testing.T) {
		require.NoError(t, Create(dbPath, testSchema("broken")))
		path := filepath.Join(dbPath, "tables", "broken", "schema.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := Open(dbPath, "broken")
		assert.ErrorIs(t, err, ErrSchemaParse)
	})

	t.Run("schema document with wrong shape", func(t *testing.T) {
		require.NoError(t, Create(dbPath, testSchema("shape")))
		path := filepath.Join(dbPath, "tables", "shape", "schema.json")
		doc := `{"name":"shape","fields":[{"name":"id","offset":0,"data_type":"FloatType","length":4}],"entry_stride":4}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		_, err := Open(dbPath, "shape")
		assert.ErrorIs(t, err, ErrSchemaDecode)
	})
}

func TestAppendThenScan(t *testing.T) {
	tbl := makeTable(t, t.TempDir(), 1)

	it, err := tbl.Iter()
	require.NoError(t, err)
	require.Equal(t, 1, it.Len())

	values, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []record.Field{record.Integer(0), record.Text("r0")}, values)

	_, ok = it.Next()
	assert.False(t, ok)

	assert.Equal(t, 1, it.BlocksAccessed())
	assert.Equal(t, 1, it.RecordsAccessed())
}

func TestScanBlockAccounting(t *testing.T) {
	tbl := makeTable(t, t.TempDir(), 25)

	it, err := tbl.Iter()
	require.NoError(t, err)
	require.Equal(t, 25, it.Len())

	for i := 0; i < 25; i++ {
		values, ok := it.Next()
		require.True(t, ok, "record %d", i)
		assert.Equal(t, uint32(i), values[0].Int)
		assert.Equal(t, fmt.Sprintf("r%d", i), values[1].Text)
	}
	_, ok := it.Next()
	require.False(t, ok)

	assert.Equal(t, 3, it.BlocksAccessed())
	assert.Equal(t, 25, it.RecordsAccessed())
}

func TestScanRewind(t *testing.T) {
	tbl := makeTable(t, t.TempDir(), 25)

	it, err := tbl.Iter()
	require.NoError(t, err)

	var first [][]record.Field
	for {
		values, ok := it.Next()
		if !ok {
			break
		}
		first = append(first, values)
	}

	it.Rewind()

	var second [][]record.Field
	for {
		values, ok := it.Next()
		if !ok {
			break
		}
		second = append(second, values)
	}

	assert.Equal(t, first, second)
	// Counters accumulate across the rewind, they are not reset.
	assert.Equal(t, 6, it.BlocksAccessed())
	assert.Equal(t, 50, it.RecordsAccessed())
}

func TestScanRewindInsideFirstBlock(t *testing.T) {
	tbl := makeTable(t, t.TempDir(), 5)

	it, err := tbl.Iter()
	require.NoError(t, err)

	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	require.Equal(t, 1, it.BlocksAccessed())

	// The window still covers record 0, so rewinding and rescanning
	// costs no extra block read.
	it.Rewind()
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	assert.Equal(t, 1, it.BlocksAccessed())
	assert.Equal(t, 10, it.RecordsAccessed())
}

func TestScanIdx(t *testing.T) {
	tbl := makeTable(t, t.TempDir(), 25)

	it, err := tbl.Iter()
	require.NoError(t, err)

	values, ok := it.Idx(13)
	require.True(t, ok)
	assert.Equal(t, uint32(13), values[0].Int)
	assert.Equal(t, 1, it.BlocksAccessed())

	// A second access inside the loaded window is free.
	values, ok = it.Idx(17)
	require.True(t, ok)
	assert.Equal(t, uint32(17), values[0].Int)
	assert.Equal(t, 1, it.BlocksAccessed())

	// Jumping backwards leaves the window and reloads.
	values, ok = it.Idx(2)
	require.True(t, ok)
	assert.Equal(t, uint32(2), values[0].Int)
	assert.Equal(t, 2, it.BlocksAccessed())

	_, ok = it.Idx(25)
	assert.False(t, ok)
	assert.Equal(t, 3, it.RecordsAccessed())
}

func TestIterIgnoresPartialTail(t *testing.T) {
	dbPath := t.TempDir()
	tbl := makeTable(t, dbPath, 3)

	// Tack a partial record onto the data file.
	path := filepath.Join(dbPath, "tables", "t", "data.bin")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.Write(make([]byte, 10))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	it, err := tbl.Iter()
	require.NoError(t, err)
	assert.Equal(t, 3, it.Len())

	n := 0
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		n++
	}
	assert.Equal(t, 3, n)
}

func TestAppendCodecErrorLeavesFileUntouched(t *testing.T) {
	dbPath := t.TempDir()
	tbl := makeTable(t, dbPath, 2)

	err := tbl.Append([]record.Field{record.Text("wrong"), record.Text("type")})
	var typeErr *record.TypeError
	require.ErrorAs(t, err, &typeErr)

	info, err := os.Stat(filepath.Join(dbPath, "tables", "t", "data.bin"))
	require.NoError(t, err)
	assert.Equal(t, int64(2*tbl.Schema.EntryStride), info.Size())
}

func TestNewIterSeesRecordsAppendedAfterEarlierIter(t *testing.T) {
	dbPath := t.TempDir()
	tbl := makeTable(t, dbPath, 2)

	// Length is fixed when the iterator is created.
	it, err := tbl.Iter()
	require.NoError(t, err)
	assert.Equal(t, 2, it.Len())

	require.NoError(t, tbl.Append([]record.Field{record.Integer(2), record.Text("r2")}))

	it2, err := tbl.Iter()
	require.NoError(t, err)
	assert.Equal(t, 3, it2.Len())
}
