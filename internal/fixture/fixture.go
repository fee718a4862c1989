// Package fixture generates demonstration tables from a declarative
// description: each table carries its record layout plus, per field, a
// rule for producing values. Fixtures are deterministic for a given
// seed, so generated databases are reproducible across runs.
package fixture

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"stridedb/internal/record"
	"stridedb/internal/table"
)

// Value sources understood by the generator.
const (
	// SourceSequence yields the row index: 0, 1, 2, …
	SourceSequence = "sequence"
	// SourceCycle yields choices[row % len(choices)].
	SourceCycle = "cycle"
	// SourcePick yields a uniformly random choice.
	SourcePick = "pick"
	// SourceFullName yields two random picks joined by a space.
	SourceFullName = "fullname"
	// SourceRef yields a uniformly random row index of another table.
	SourceRef = "ref"
)

// FieldConfig describes one field: its slot in the record layout and
// how its values are produced.
type FieldConfig struct {
	Name    string   `yaml:"name"`
	Offset  int      `yaml:"offset"`
	Type    string   `yaml:"type"` // "integer" or "text"
	Length  int      `yaml:"length"`
	Source  string   `yaml:"source"`
	Choices []string `yaml:"choices,omitempty"`
	Ref     string   `yaml:"ref,omitempty"`
}

// TableConfig describes one table and how many rows to generate for it.
type TableConfig struct {
	Name        string        `yaml:"name"`
	Rows        int           `yaml:"rows"`
	EntryStride int           `yaml:"entry_stride"`
	Fields      []FieldConfig `yaml:"fields"`
}

// Config is a full fixture description.
type Config struct {
	Seed   int64         `yaml:"seed"`
	Tables []TableConfig `yaml:"tables"`
}

// Load reads and validates a YAML fixture description.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("fixture: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Schema converts the table description into a record schema.
func (tc *TableConfig) Schema() (*record.TableSchema, error) {
	fields := make([]record.FieldSchema, 0, len(tc.Fields))
	for _, fc := range tc.Fields {
		var dt record.FieldType
		switch fc.Type {
		case "integer":
			dt = record.IntegerType
		case "text":
			dt = record.TextType
		default:
			return nil, fmt.Errorf("fixture: table %q field %q has unknown type %q",
				tc.Name, fc.Name, fc.Type)
		}
		fields = append(fields, record.FieldSchema{
			Name:     fc.Name,
			Offset:   fc.Offset,
			DataType: dt,
			Length:   fc.Length,
		})
	}
	return &record.TableSchema{
		Name:        tc.Name,
		Fields:      fields,
		EntryStride: tc.EntryStride,
	}, nil
}

// Validate checks the fixture against both the record-layout invariants
// and the generator's own rules (sources, choice lists, references).
func (c *Config) Validate() error {
	rows := make(map[string]int, len(c.Tables))
	for _, tc := range c.Tables {
		if _, dup := rows[tc.Name]; dup {
			return fmt.Errorf("fixture: duplicate table %q", tc.Name)
		}
		rows[tc.Name] = tc.Rows
	}

	for _, tc := range c.Tables {
		if tc.Rows < 0 {
			return fmt.Errorf("fixture: table %q has negative row count", tc.Name)
		}
		schema, err := tc.Schema()
		if err != nil {
			return err
		}
		if err := record.ValidateSchema(schema); err != nil {
			return fmt.Errorf("fixture: table %q: %w", tc.Name, err)
		}

		for _, fc := range tc.Fields {
			switch fc.Source {
			case SourceSequence:
				if fc.Type != "integer" {
					return fmt.Errorf("fixture: table %q field %q: sequence needs an integer field",
						tc.Name, fc.Name)
				}
			case SourceCycle, SourcePick, SourceFullName:
				if fc.Type != "text" {
					return fmt.Errorf("fixture: table %q field %q: %s needs a text field",
						tc.Name, fc.Name, fc.Source)
				}
				if len(fc.Choices) == 0 {
					return fmt.Errorf("fixture: table %q field %q: %s needs a non-empty choice list",
						tc.Name, fc.Name, fc.Source)
				}
			case SourceRef:
				if fc.Type != "integer" {
					return fmt.Errorf("fixture: table %q field %q: ref needs an integer field",
						tc.Name, fc.Name)
				}
				n, ok := rows[fc.Ref]
				if !ok {
					return fmt.Errorf("fixture: table %q field %q references unknown table %q",
						tc.Name, fc.Name, fc.Ref)
				}
				if n == 0 {
					return fmt.Errorf("fixture: table %q field %q references empty table %q",
						tc.Name, fc.Name, fc.Ref)
				}
			default:
				return fmt.Errorf("fixture: table %q field %q has unknown source %q",
					tc.Name, fc.Name, fc.Source)
			}
		}
	}
	return nil
}

// Generate creates and populates every table of the fixture under
// dbPath. Tables are populated concurrently; each gets its own handle
// and a seed derived from its position, so output is deterministic for
// a fixed config and no two writers ever share a file cursor.
func Generate(ctx context.Context, dbPath string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	rows := make(map[string]int, len(cfg.Tables))
	for _, tc := range cfg.Tables {
		rows[tc.Name] = tc.Rows
	}

	for _, tc := range cfg.Tables {
		schema, err := tc.Schema()
		if err != nil {
			return err
		}
		if err := table.Create(dbPath, schema); err != nil {
			return fmt.Errorf("fixture: create table %q: %w", tc.Name, err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, tc := range cfg.Tables {
		i, tc := i, tc
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			return populate(ctx, dbPath, tc, rows, rng)
		})
	}
	return g.Wait()
}

func populate(ctx context.Context, dbPath string, tc TableConfig, rows map[string]int, rng *rand.Rand) error {
	t, err := table.Open(dbPath, tc.Name)
	if err != nil {
		return fmt.Errorf("fixture: open table %q: %w", tc.Name, err)
	}
	defer t.Close()

	values := make([]record.Field, len(tc.Fields))
	for row := 0; row < tc.Rows; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i, fc := range tc.Fields {
			switch fc.Source {
			case SourceSequence:
				values[i] = record.Integer(uint32(row))
			case SourceCycle:
				values[i] = record.Text(truncateText(fc.Choices[row%len(fc.Choices)], fc.Length-1))
			case SourcePick:
				values[i] = record.Text(truncateText(fc.Choices[rng.Intn(len(fc.Choices))], fc.Length-1))
			case SourceFullName:
				first := fc.Choices[rng.Intn(len(fc.Choices))]
				last := fc.Choices[rng.Intn(len(fc.Choices))]
				values[i] = record.Text(truncateText(first+" "+last, fc.Length-1))
			case SourceRef:
				values[i] = record.Integer(uint32(rng.Intn(rows[fc.Ref])))
			}
		}
		if err := t.Append(values); err != nil {
			return fmt.Errorf("fixture: append to %q: %w", tc.Name, err)
		}
	}
	return nil
}

// truncateText cuts s to at most n bytes without splitting a rune.
func truncateText(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
