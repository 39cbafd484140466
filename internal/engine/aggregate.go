package engine

// BuildAggregatedSeries groups rows by the xAxis column, optionally pivots
// by the legend column, and reduces the value column per the binding's
// aggregation. Output row order is the first-seen order of category values;
// pivot measure order is the first-seen order of legend keys across the
// whole input. A missing xAxis or value binding yields nil, never an error.
func BuildAggregatedSeries(rows []Row, b Binding) []AggregatedRow {
	valueField := b.ValueField()
	if b.XAxis == "" || valueField == "" {
		return nil
	}

	// 1. Group by category, preserving first-seen order
	var order []string
	buckets := make(map[string][]Row)
	for _, row := range rows {
		key := ToString(row[b.XAxis])
		if _, exists := buckets[key]; !exists {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], row)
	}

	if b.Legend == "" {
		series := make([]AggregatedRow, 0, len(order))
		for _, key := range order {
			series = append(series, AggregatedRow{
				Column:   b.XAxis,
				Category: key,
				Measures: []Measure{{Key: valueField, Value: reduce(buckets[key], valueField, b.Aggregation)}},
			})
		}
		return series
	}

	// 2. Legend pivot: collect legend keys in first-seen order across the
	// whole dataset, dropping absent values from the key set
	var legendKeys []string
	legendSeen := make(map[string]bool)
	for _, row := range rows {
		key := ToString(row[b.Legend])
		if key == "" || legendSeen[key] {
			continue
		}
		legendSeen[key] = true
		legendKeys = append(legendKeys, key)
	}

	series := make([]AggregatedRow, 0, len(order))
	for _, key := range order {
		sub := make(map[string][]Row)
		for _, row := range buckets[key] {
			lk := ToString(row[b.Legend])
			if lk == "" {
				continue
			}
			sub[lk] = append(sub[lk], row)
		}

		measures := make([]Measure, 0, len(legendKeys))
		for _, lk := range legendKeys {
			measures = append(measures, Measure{Key: lk, Value: reduce(sub[lk], valueField, b.Aggregation)})
		}
		series = append(series, AggregatedRow{Column: b.XAxis, Category: key, Measures: measures})
	}
	return series
}

// reduce collapses one bucket of rows to a number. Empty buckets reduce to
// 0 for every aggregation mode.
func reduce(bucket []Row, field string, agg Aggregation) float64 {
	if len(bucket) == 0 {
		return 0
	}
	switch agg {
	case AggSum:
		return sumField(bucket, field)
	case AggFirst:
		return ToNumber(bucket[0][field])
	case AggLast:
		return ToNumber(bucket[len(bucket)-1][field])
	case AggPercentage:
		// Literally (sum/count)*100 — a historical quirk of the source
		// system, kept intact rather than reinterpreted as share-of-total.
		return sumField(bucket, field) / float64(len(bucket)) * 100
	case AggCount:
		return float64(len(bucket))
	default:
		// Unspecified aggregation defaults to count.
		return float64(len(bucket))
	}
}

func sumField(rows []Row, field string) float64 {
	var total float64
	for _, row := range rows {
		total += ToNumber(row[field])
	}
	return total
}
