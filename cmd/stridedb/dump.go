package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"stridedb/internal/query"
	"stridedb/internal/record"
	"stridedb/internal/table"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [table...]",
	Short: "Print tables along with their scan cost.",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			var err error
			names, err = listTables(dbPath)
			if err != nil {
				return err
			}
		}

		for _, name := range names {
			t, err := table.Open(dbPath, name)
			if err != nil {
				return err
			}
			it, err := t.Iter()
			if err != nil {
				_ = t.Close()
				return err
			}
			printTable(it)
			if err := t.Close(); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func listTables(dbPath string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(dbPath, "tables"))
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	var names []string
	for _, ent := range entries {
		if ent.IsDir() {
			names = append(names, ent.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func printTableHeader(schema *record.TableSchema) {
	names := make([]string, len(schema.Fields))
	for i, f := range schema.Fields {
		names[i] = f.Name
	}
	fmt.Println(strings.Join(names, "\t"))
	fmt.Println("-----------------------------------------------------")
}

func printTable(it query.Iterator) {
	printTableHeader(it.Schema())
	for {
		values, ok := it.Next()
		if !ok {
			break
		}
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = v.String()
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
	fmt.Printf("Blocks accessed: %d, Records accessed: %d\n\n",
		it.BlocksAccessed(), it.RecordsAccessed())
}
