package engine

import (
	"math"
	"testing"
)

var salesRows = []Row{
	{"region": "US", "sales": 100},
	{"region": "EU", "sales": 200},
	{"region": "US", "sales": 50},
}

func TestBuildAggregatedSeriesCategoryOrder(t *testing.T) {
	b := Binding{XAxis: "region", YAxis: "sales", Aggregation: AggSum}
	got := BuildAggregatedSeries(salesRows, b)

	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	// US precedes EU because US appears first in the input.
	if got[0].Category != "US" || got[0].Measure("sales") != 150 {
		t.Errorf("row[0] = %+v, want US/150", got[0])
	}
	if got[1].Category != "EU" || got[1].Measure("sales") != 200 {
		t.Errorf("row[1] = %+v, want EU/200", got[1])
	}
}

func TestBuildAggregatedSeriesConservation(t *testing.T) {
	rows := []Row{
		{"cat": "a", "v": 1.5},
		{"cat": "b", "v": "2"},
		{"cat": "a", "v": "junk"}, // coerces to 0
		{"cat": "c", "v": nil},
		{"cat": "b", "v": 4},
	}
	b := Binding{XAxis: "cat", YAxis: "v", Aggregation: AggSum}

	var inputSum float64
	for _, r := range rows {
		inputSum += ToNumber(r["v"])
	}

	var outputSum float64
	for _, row := range BuildAggregatedSeries(rows, b) {
		outputSum += row.Measure("v")
	}

	if math.Abs(outputSum-inputSum) > 1e-9 {
		t.Errorf("sum not conserved: output %v, input %v", outputSum, inputSum)
	}
}

func TestBuildAggregatedSeriesAggregations(t *testing.T) {
	rows := []Row{
		{"cat": "a", "v": 10},
		{"cat": "a", "v": 30},
		{"cat": "a", "v": "oops"},
	}

	tests := []struct {
		name     string
		agg      Aggregation
		expected float64
	}{
		{"Count", AggCount, 3},
		{"Sum", AggSum, 40},
		{"First", AggFirst, 10},
		{"Last", AggLast, 0}, // "oops" coerces to 0
		{"Percentage", AggPercentage, 40.0 / 3 * 100},
		{"DefaultIsCount", Aggregation(""), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAggregatedSeries(rows, Binding{XAxis: "cat", YAxis: "v", Aggregation: tt.agg})
			if len(got) != 1 {
				t.Fatalf("expected 1 row, got %d", len(got))
			}
			if v := got[0].Measure("v"); math.Abs(v-tt.expected) > 1e-9 {
				t.Errorf("value = %v, want %v", v, tt.expected)
			}
		})
	}
}

func TestBuildAggregatedSeriesCountBound(t *testing.T) {
	b := Binding{XAxis: "region", YAxis: "sales", Aggregation: AggCount}
	for _, row := range BuildAggregatedSeries(salesRows, b) {
		v := row.Measure("sales")
		if v < 0 || v > float64(len(salesRows)) {
			t.Errorf("count %v out of [0, %d] for category %q", v, len(salesRows), row.Category)
		}
	}
}

func TestBuildAggregatedSeriesLegendPivot(t *testing.T) {
	rows := []Row{
		{"month": "Jan", "channel": "web", "sales": 10},
		{"month": "Jan", "channel": "store", "sales": 20},
		{"month": "Feb", "channel": "web", "sales": 30},
		{"month": "Feb", "channel": nil, "sales": 99}, // absent legend value: excluded from key set
	}
	b := Binding{XAxis: "month", YAxis: "sales", Legend: "channel", Aggregation: AggSum}

	got := BuildAggregatedSeries(rows, b)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	// Legend keys in first-seen order across the whole input, one measure
	// per key in every output row.
	for i, row := range got {
		if len(row.Measures) != 2 || row.Measures[0].Key != "web" || row.Measures[1].Key != "store" {
			t.Fatalf("row[%d] measures = %+v, want keys [web store]", i, row.Measures)
		}
	}

	if got[0].Category != "Jan" || got[0].Measure("web") != 10 || got[0].Measure("store") != 20 {
		t.Errorf("Jan row = %+v", got[0])
	}
	// Feb has no store rows: the pivot key is still present, reduced to 0.
	if got[1].Category != "Feb" || got[1].Measure("web") != 30 || got[1].Measure("store") != 0 {
		t.Errorf("Feb row = %+v", got[1])
	}
}

func TestBuildAggregatedSeriesMissingBindings(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding
	}{
		{"Empty", Binding{}},
		{"NoXAxis", Binding{YAxis: "sales", Aggregation: AggSum}},
		{"NoValueField", Binding{XAxis: "region", Aggregation: AggSum}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildAggregatedSeries(salesRows, tt.binding); len(got) != 0 {
				t.Errorf("expected empty result, got %v", got)
			}
		})
	}
}

func TestBuildAggregatedSeriesFieldFallback(t *testing.T) {
	// field serves as the value column when yAxis is absent.
	b := Binding{XAxis: "region", Field: "sales", Aggregation: AggSum}
	got := BuildAggregatedSeries(salesRows, b)
	if len(got) != 2 || got[0].Measure("sales") != 150 {
		t.Errorf("unexpected series: %v", got)
	}
}
