package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"dashforge/internal/engine"
	"dashforge/internal/widget"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	layoutPath   string
	widgetID     string
	filterSearch string
	filterRange  string
	filterRegion string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a dashboard layout into chart-ready data",
	Long: `Loads a dashboard layout document, applies the global filters and any
slicer selections stored in the layout, and prints the dispatched result of
every widget (or a single widget via --widget) as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(layoutPath)
		if err != nil {
			return fmt.Errorf("failed to read layout: %w", err)
		}
		layout, err := widget.ParseLayout(data)
		if err != nil {
			return err
		}
		for _, warning := range layout.Warnings {
			log.Warn().Str("layout", layoutPath).Msg(warning)
		}

		state := engine.FilterState{
			Search:    filterSearch,
			DateRange: engine.DateRange(filterRange),
			Region:    filterRegion,
		}

		results := make(map[string]engine.Result)
		for _, w := range layout.Widgets {
			if widgetID != "" && w.ID != widgetID {
				continue
			}
			results[w.ID] = renderWidget(layout, w, state)
		}
		if widgetID != "" && len(results) == 0 {
			return fmt.Errorf("widget %q not found in layout", widgetID)
		}

		return printJSON(results)
	},
}

// renderWidget runs the full data path for one widget: dataset snapshot →
// global filters → sibling slicer selections → chart-kind dispatch.
func renderWidget(layout *widget.Layout, w widget.Widget, state engine.FilterState) engine.Result {
	rows, ok := store.Rows(w.DatasetID)
	if !ok {
		return engine.Result{
			Kind:    w.Kind,
			Status:  engine.StatusNoData,
			Message: fmt.Sprintf("unknown dataset %q", w.DatasetID),
		}
	}

	rows = engine.ApplyGlobalFilters(rows, state, nil)
	rows = applySiblingSlicers(layout, w, rows)

	return engine.Dispatch(rows, w.Binding)
}

// applySiblingSlicers folds the stored selections of every other slicer on
// the same dataset into this widget's row set. This is the host-side half of
// the slicer contract: the engine only reports toggles, the host reapplies
// them to sibling widgets.
func applySiblingSlicers(layout *widget.Layout, target widget.Widget, rows []engine.Row) []engine.Row {
	for _, w := range layout.Widgets {
		if w.ID == target.ID || w.Kind != engine.KindSlicer || w.DatasetID != target.DatasetID {
			continue
		}
		if len(w.SelectedFilters) == 0 {
			continue
		}
		slicer := engine.NewSlicerState(w.Binding, nil)
		rows = slicer.ApplySelection(rows)
	}
	return rows
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	if cfg.PrettyOutput {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func init() {
	renderCmd.Flags().StringVar(&layoutPath, "layout", "dashboard.json", "path to the dashboard layout document")
	renderCmd.Flags().StringVar(&widgetID, "widget", "", "render only the widget with this id")
	renderCmd.Flags().StringVar(&filterSearch, "search", "", "global free-text search filter")
	renderCmd.Flags().StringVar(&filterRange, "range", "", "global date range (last-7-days, last-30-days, last-90-days, this-year)")
	renderCmd.Flags().StringVar(&filterRegion, "region", "all", "global region filter")
	rootCmd.AddCommand(renderCmd)
}
