package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stridedb/internal/query"
	"stridedb/internal/record"
	"stridedb/internal/table"
)

var (
	joinPlan  string
	joinKey   string
	joinMatch string
)

var joinCmd = &cobra.Command{
	Use:   "join <outer> <inner>",
	Short: "Join two tables and report the plan's I/O cost.",
	Long: `Join two tables on an outer key column.

With --plan pk the key value is used as the inner table's row index
(index nested loops). With --plan cross the product of both tables is
filtered by key = --match column equality.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		outer, err := table.Open(dbPath, args[0])
		if err != nil {
			return err
		}
		defer outer.Close()
		inner, err := table.Open(dbPath, args[1])
		if err != nil {
			return err
		}
		defer inner.Close()

		outerIt, err := outer.Iter()
		if err != nil {
			return err
		}
		innerIt, err := inner.Iter()
		if err != nil {
			return err
		}

		keyIdx, ok := outer.Schema.MapField(joinKey)
		if !ok {
			return fmt.Errorf("outer table %q has no field %q", args[0], joinKey)
		}

		switch joinPlan {
		case "pk":
			keyFn := func(values []record.Field) (int, bool) {
				v := values[keyIdx]
				if v.Type != record.IntegerType {
					return 0, false
				}
				return int(v.Int), true
			}
			printTable(query.PKJoin(outerIt, innerIt, keyFn))
		case "cross":
			joined := query.Cross(outerIt, innerIt)
			schema := joined.Schema()
			left, ok := schema.MapField(outer.Schema.Name + "." + joinKey)
			if !ok {
				return fmt.Errorf("joined schema has no field %q", joinKey)
			}
			right, ok := schema.MapField(inner.Schema.Name + "." + joinMatch)
			if !ok {
				return fmt.Errorf("inner table %q has no field %q", args[1], joinMatch)
			}
			printTable(query.NewSelect(joined, func(values []record.Field) bool {
				return values[left].Equal(values[right])
			}))
		default:
			return fmt.Errorf("unknown plan %q (want pk or cross)", joinPlan)
		}
		return nil
	},
}

func init() {
	joinCmd.Flags().StringVar(&joinPlan, "plan", "pk", "Join strategy: pk or cross")
	joinCmd.Flags().StringVar(&joinKey, "key", "departamento", "Outer key column")
	joinCmd.Flags().StringVar(&joinMatch, "match", "id", "Inner column compared by the cross plan")
	rootCmd.AddCommand(joinCmd)
}
