package commands

import (
	"fmt"

	"dashforge/internal/engine"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [dataset-id]",
	Short: "Show what the engine infers about a dataset",
	Long: `Prints the inferred date and region columns of a dataset along with its
region filter options. Without an argument, lists the loaded dataset ids.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return printJSON(store.IDs())
		}

		rows, ok := store.Rows(args[0])
		if !ok {
			return fmt.Errorf("unknown dataset %q", args[0])
		}

		report := struct {
			Dataset       string          `json:"dataset"`
			Rows          int             `json:"rows"`
			DateColumn    string          `json:"dateColumn,omitempty"`
			RegionColumn  string          `json:"regionColumn,omitempty"`
			RegionOptions []engine.Option `json:"regionOptions"`
		}{
			Dataset:       args[0],
			Rows:          len(rows),
			DateColumn:    engine.InferDateColumn(rows),
			RegionColumn:  engine.InferRegionColumn(rows),
			RegionOptions: engine.RegionOptions(rows),
		}
		return printJSON(report)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
