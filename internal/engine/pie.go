package engine

// PieData collapses rows to name/value pairs for proportion-style charts
// (pie, donut, funnel, treemap). It reuses the series grouping with the
// legend pivot disabled: the category is xAxis when bound, otherwise legend.
// Missing category or value bindings yield nil.
func PieData(rows []Row, b Binding) []NameValue {
	category := b.CategoryField()
	if category == "" || b.ValueField() == "" {
		return nil
	}

	flat := b
	flat.XAxis = category
	flat.Legend = ""

	series := BuildAggregatedSeries(rows, flat)
	pairs := make([]NameValue, 0, len(series))
	for _, row := range series {
		pairs = append(pairs, NameValue{Name: row.Category, Value: row.Measure(flat.ValueField())})
	}
	return pairs
}
