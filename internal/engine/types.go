package engine

// Row is a single flat record mapping column names to scalar values
// (number, string, bool, nil, or a date-like string). Rows within one
// dataset are assumed structurally homogeneous but are never schema-validated.
type Row map[string]any

// Aggregation selects the reduction applied within a group.
type Aggregation string

const (
	AggCount      Aggregation = "count"
	AggSum        Aggregation = "sum"
	AggFirst      Aggregation = "first"
	AggLast       Aggregation = "last"
	AggPercentage Aggregation = "percentage"
)

// DateRange identifies a rolling or calendar window relative to "now".
type DateRange string

const (
	RangeNone     DateRange = ""
	RangeLast7    DateRange = "last-7-days"
	RangeLast30   DateRange = "last-30-days"
	RangeLast90   DateRange = "last-90-days"
	RangeThisYear DateRange = "this-year"
	RangeCustom   DateRange = "custom"
)

// FilterState is the dashboard-wide narrowing applied before any
// widget-level aggregation. The zero value filters nothing.
type FilterState struct {
	Search    string    `json:"search"`
	DateRange DateRange `json:"dateRange"`
	Region    string    `json:"region"` // "all" or empty = no-op
}

// Binding is the set of column-name assignments that parameterize one
// widget. Any subset of fields may be absent; missing bindings degrade to
// empty results, never errors.
type Binding struct {
	ID              string      `json:"id"`
	Kind            ChartKind   `json:"type"`
	XAxis           string      `json:"xAxis,omitempty"`
	YAxis           string      `json:"yAxis,omitempty"`
	Field           string      `json:"field,omitempty"`
	Legend          string      `json:"legend,omitempty"`
	Aggregation     Aggregation `json:"aggregation,omitempty"`
	FilterField     string      `json:"filterField,omitempty"`
	SelectedFilters []string    `json:"selectedFilters,omitempty"`
	DatasetID       string      `json:"datasetId,omitempty"`
}

// ValueField returns the column the aggregation reduces: yAxis when bound,
// otherwise field.
func (b Binding) ValueField() string {
	if b.YAxis != "" {
		return b.YAxis
	}
	return b.Field
}

// CategoryField returns the grouping column for proportion-style charts:
// xAxis when bound, otherwise legend.
func (b Binding) CategoryField() string {
	if b.XAxis != "" {
		return b.XAxis
	}
	return b.Legend
}

// Measure is one named numeric output of a group reduction. For a singular
// series the key is the value column; for a pivoted series there is one
// measure per legend key.
type Measure struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// AggregatedRow is one output row of the aggregation engine: the category
// value keyed by its original column name plus an ordered measure list.
// Measure order is the first-seen order of legend keys across the input.
type AggregatedRow struct {
	Column   string    `json:"column"`
	Category string    `json:"category"`
	Measures []Measure `json:"measures"`
}

// Measure returns the value for a measure key, or 0 when absent.
func (r AggregatedRow) Measure(key string) float64 {
	for _, m := range r.Measures {
		if m.Key == key {
			return m.Value
		}
	}
	return 0
}

// NameValue is a single proportion-chart slice or ranked entry.
type NameValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Option is one entry of a filter-option list (region dropdown, slicer).
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
