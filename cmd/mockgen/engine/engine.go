package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	core "dashforge/internal/engine"
	"dashforge/internal/widget"
)

type GeneratorConfig struct {
	Scenario string
	Count    int
	Seed     int64
	Now      time.Time
}

var regions = []string{"North America", "Europe", "Asia Pacific", "Latin America"}
var channels = []string{"web", "store", "partner"}
var products = []string{"Widget Basic", "Widget Pro", "Gadget Mini", "Gadget Max"}

// Generate produces a mock sales dataset plus a dashboard layout that
// exercises every implemented chart-kind class against it.
func Generate(cfg GeneratorConfig) ([]core.Row, *widget.Layout) {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	rows := make([]core.Row, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		// Spread order dates over the trailing year, newest last
		daysAgo := 365 - int(float64(i)/float64(cfg.Count)*365)
		orderDate := cfg.Now.AddDate(0, 0, -daysAgo)

		amount := 50.0 + rng.Float64()*450.0
		switch cfg.Scenario {
		case "seasonal":
			// Q4 bump
			if orderDate.Month() >= time.October {
				amount *= 1.8
			}
		case "skewed":
			if rng.Float64() < 0.05 {
				amount *= 20 // occasional whale orders
			}
		}

		rows = append(rows, core.Row{
			"order_id":   fmt.Sprintf("ORD-%04d", i+1),
			"order_date": orderDate.Format("2006-01-02"),
			"region":     regions[rng.Intn(len(regions))],
			"channel":    channels[rng.Intn(len(channels))],
			"product":    products[rng.Intn(len(products))],
			"amount":     math.Round(amount*100) / 100,
			"units":      1 + rng.Intn(5),
		})
	}

	return rows, demoLayout()
}

func demoLayout() *widget.Layout {
	return &widget.Layout{
		Widgets: []widget.Widget{
			{
				Binding: core.Binding{ID: "sales-by-region", Kind: core.KindBar, XAxis: "region", YAxis: "amount", Aggregation: core.AggSum, DatasetID: "sales"},
				Title:   "Sales by Region",
				Size:    widget.Size{Width: 6, Height: 4},
			},
			{
				Binding:  core.Binding{ID: "channel-mix", Kind: core.KindStackedBar, XAxis: "region", YAxis: "amount", Legend: "channel", Aggregation: core.AggSum, DatasetID: "sales"},
				Title:    "Channel Mix by Region",
				Position: widget.Position{X: 6},
				Size:     widget.Size{Width: 6, Height: 4},
			},
			{
				Binding:  core.Binding{ID: "product-share", Kind: core.KindDonut, XAxis: "product", YAxis: "amount", Aggregation: core.AggSum, DatasetID: "sales"},
				Title:    "Product Share",
				Position: widget.Position{Y: 4},
				Size:     widget.Size{Width: 4, Height: 4},
			},
			{
				Binding:  core.Binding{ID: "total-revenue", Kind: core.KindCard, Field: "amount", Aggregation: core.AggSum, DatasetID: "sales"},
				Title:    "Total Revenue",
				Position: widget.Position{X: 4, Y: 4},
				Size:     widget.Size{Width: 2, Height: 2},
			},
			{
				Binding:  core.Binding{ID: "order-count", Kind: core.KindKPI, Field: "order_id", Aggregation: core.AggCount, DatasetID: "sales"},
				Title:    "Orders",
				Position: widget.Position{X: 4, Y: 6},
				Size:     widget.Size{Width: 2, Height: 2},
			},
			{
				Binding:  core.Binding{ID: "order-table", Kind: core.KindTable, DatasetID: "sales"},
				Title:    "Orders",
				Position: widget.Position{X: 6, Y: 4},
				Size:     widget.Size{Width: 6, Height: 4},
			},
			{
				Binding:  core.Binding{ID: "region-slicer", Kind: core.KindSlicer, FilterField: "region", DatasetID: "sales"},
				Title:    "Region",
				Position: widget.Position{Y: 8},
				Size:     widget.Size{Width: 3, Height: 2},
			},
		},
	}
}

// Save writes the dataset rows and the dashboard layout as JSON next to
// each other, ready for `dashforge render`.
func Save(outDir string, datasetID string, rows []core.Row, layout *widget.Layout) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	dataPath := filepath.Join(outDir, fmt.Sprintf("%s.json", datasetID))
	layoutPath := filepath.Join(outDir, "dashboard.json")

	f, err := os.Create(dataPath)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return err
	}

	fl, err := os.Create(layoutPath)
	if err != nil {
		return err
	}
	defer fl.Close()

	encL := json.NewEncoder(fl)
	encL.SetIndent("", "  ")
	return encL.Encode(layout)
}
