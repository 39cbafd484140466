package engine

import "fmt"

// ChartKind is the widget's declared chart type. The set is closed: kinds
// outside the registry produce an explicit unknown result, never a panic.
type ChartKind string

const (
	KindBar        ChartKind = "bar"
	KindColumn     ChartKind = "column"
	KindStackedBar ChartKind = "stacked-bar"
	KindLine       ChartKind = "line"
	KindArea       ChartKind = "area"
	KindScatter    ChartKind = "scatter"
	KindBubble     ChartKind = "bubble"
	KindWaterfall  ChartKind = "waterfall"
	KindCombo      ChartKind = "combo"

	KindPie     ChartKind = "pie"
	KindDonut   ChartKind = "donut"
	KindFunnel  ChartKind = "funnel"
	KindTreemap ChartKind = "treemap"

	KindTable  ChartKind = "table"
	KindMatrix ChartKind = "matrix"

	KindCard  ChartKind = "card"
	KindKPI   ChartKind = "kpi"
	KindGauge ChartKind = "gauge"

	KindSlicer ChartKind = "slicer"

	KindMaps              ChartKind = "maps"
	KindDecompositionTree ChartKind = "decomposition-tree"
	KindKeyInfluencers    ChartKind = "key-influencers"
)

// kindClass selects which transformer a chart kind routes to.
type kindClass int

const (
	classCategory kindClass = iota
	classProportion
	classScalar
	classTabular
	classSlicer
	classPlaceholder
)

// kindSpec is the registry entry for one chart kind: its transformer class,
// the binding fields it needs before any row processing is attempted, and a
// human-readable note for kinds that are registered but not implemented.
type kindSpec struct {
	Class       kindClass
	Placeholder string
}

var kindRegistry = map[ChartKind]kindSpec{
	KindBar:        {Class: classCategory},
	KindColumn:     {Class: classCategory},
	KindStackedBar: {Class: classCategory},
	KindLine:       {Class: classCategory},
	KindArea:       {Class: classCategory},
	KindScatter:    {Class: classCategory},
	KindBubble:     {Class: classCategory},
	KindWaterfall:  {Class: classCategory},
	KindCombo:      {Class: classCategory},

	KindPie:     {Class: classProportion},
	KindDonut:   {Class: classProportion},
	KindFunnel:  {Class: classProportion},
	KindTreemap: {Class: classProportion},

	KindTable:  {Class: classTabular},
	KindMatrix: {Class: classTabular},

	KindCard:  {Class: classScalar},
	KindKPI:   {Class: classScalar},
	KindGauge: {Class: classScalar},

	KindSlicer: {Class: classSlicer},

	KindMaps:              {Class: classPlaceholder, Placeholder: "Map visuals are not implemented yet"},
	KindDecompositionTree: {Class: classPlaceholder, Placeholder: "Decomposition tree visuals are not implemented yet"},
	KindKeyInfluencers:    {Class: classPlaceholder, Placeholder: "Key influencer visuals are not implemented yet"},
}

// KnownKind reports whether kind is in the registry.
func KnownKind(kind ChartKind) bool {
	_, ok := kindRegistry[kind]
	return ok
}

// ResultStatus classifies a dispatch outcome.
type ResultStatus string

const (
	StatusOK          ResultStatus = "ok"
	StatusNoData      ResultStatus = "no-data"
	StatusPlaceholder ResultStatus = "placeholder"
	StatusUnknown     ResultStatus = "unknown"
)

// Result is the tagged output of a dispatch: exactly one payload field is
// populated based on the kind's class. A no-data or unknown result carries
// only the status and message so one bad widget never aborts the rest of
// the dashboard.
type Result struct {
	Kind    ChartKind    `json:"kind"`
	Status  ResultStatus `json:"status"`
	Message string       `json:"message,omitempty"`

	Series  []AggregatedRow `json:"series,omitempty"`
	Stacked bool            `json:"stacked,omitempty"`
	Pairs   []NameValue     `json:"pairs,omitempty"`
	Scalar  string          `json:"scalar,omitempty"`
	Columns []string        `json:"columns,omitempty"`
	Rows    []Row           `json:"rows,omitempty"`
	Options []Option        `json:"options,omitempty"`
}

func noData(kind ChartKind, message string) Result {
	return Result{Kind: kind, Status: StatusNoData, Message: message}
}

// Dispatch routes already globally-filtered rows through the transformer
// for the binding's chart kind. Binding completeness is checked before any
// transformation so missing bindings surface as a defined no-data result.
func Dispatch(rows []Row, b Binding) Result {
	spec, ok := kindRegistry[b.Kind]
	if !ok {
		return Result{
			Kind:    b.Kind,
			Status:  StatusUnknown,
			Message: fmt.Sprintf("unknown chart type %q", string(b.Kind)),
		}
	}

	switch spec.Class {
	case classCategory:
		if b.XAxis == "" || b.ValueField() == "" {
			return noData(b.Kind, "x-axis and value bindings are required")
		}
		series := BuildAggregatedSeries(rows, b)
		if len(series) == 0 {
			return noData(b.Kind, "no rows to aggregate")
		}
		return Result{
			Kind:    b.Kind,
			Status:  StatusOK,
			Series:  series,
			Stacked: b.Legend != "" || b.Kind == KindStackedBar,
		}

	case classProportion:
		if b.CategoryField() == "" || b.ValueField() == "" {
			return noData(b.Kind, "category and value bindings are required")
		}
		pairs := PieData(rows, b)
		if len(pairs) == 0 {
			return noData(b.Kind, "no rows to aggregate")
		}
		return Result{Kind: b.Kind, Status: StatusOK, Pairs: pairs}

	case classScalar:
		if b.ValueField() == "" {
			return noData(b.Kind, "value binding is required")
		}
		return Result{Kind: b.Kind, Status: StatusOK, Scalar: CardValue(b, rows)}

	case classTabular:
		if len(rows) == 0 {
			return noData(b.Kind, "no rows")
		}
		// Pass-through, unaggregated; columns come from the first row.
		return Result{Kind: b.Kind, Status: StatusOK, Columns: columnOrder(rows[:1]), Rows: rows}

	case classSlicer:
		if b.FilterField == "" {
			return noData(b.Kind, "filter field binding is required")
		}
		state := NewSlicerState(b, nil)
		return Result{Kind: b.Kind, Status: StatusOK, Options: state.Options(rows)}

	default:
		return Result{Kind: b.Kind, Status: StatusPlaceholder, Message: spec.Placeholder}
	}
}
