package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// CardValue reduces all rows to the single scalar a KPI card displays. The
// result is always a display string; a missing value binding or an empty
// row set yields "0".
func CardValue(b Binding, rows []Row) string {
	field := b.ValueField()
	if field == "" || len(rows) == 0 {
		return "0"
	}

	switch b.Aggregation {
	case AggSum:
		return formatGrouped(sumField(rows, field))
	case AggFirst:
		return cardCell(rows[0][field])
	case AggLast:
		return cardCell(rows[len(rows)-1][field])
	case AggPercentage:
		// Same (sum/count)*100 formula as the series reducer.
		pct := sumField(rows, field) / float64(len(rows)) * 100
		return fmt.Sprintf("%.1f%%", pct)
	default:
		// count, and any unspecified aggregation
		return strconv.Itoa(len(rows))
	}
}

func cardCell(v any) string {
	s := ToString(v)
	if s == "" {
		return "0"
	}
	return s
}

// formatGrouped renders a number with comma-grouped thousands, keeping any
// fractional part as-is ("1234567.5" → "1,234,567.5").
func formatGrouped(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	if len(intPart) > 3 {
		var parts []string
		for len(intPart) > 3 {
			parts = append([]string{intPart[len(intPart)-3:]}, parts...)
			intPart = intPart[:len(intPart)-3]
		}
		parts = append([]string{intPart}, parts...)
		intPart = strings.Join(parts, ",")
	}

	return sign + intPart + fracPart
}
