// Package format renders grid cell values for display.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
)

// Placeholder is shown for values that are missing or cannot be read as numbers.
const Placeholder = "—"

var currencyColumns = map[string]bool{
	"cva":             true,
	"dva":             true,
	"fva":             true,
	"fca":             true,
	"fba":             true,
	"estimatedCharge": true,
}

var percentColumns = map[string]bool{
	"roe": true,
	"cqr": true,
}

// Currency renders v as dollars with thousands separators, e.g. $1,234,567.
func Currency(v any) string {
	f, ok := toNumber(v)
	if !ok {
		return Placeholder
	}
	if f < 0 {
		return "-$" + humanize.Commaf(-f)
	}
	return "$" + humanize.Commaf(f)
}

// Percent renders a ratio as a percentage with two decimals, e.g. 0.1234 -> 12.34%.
func Percent(v any) string {
	f, ok := toNumber(v)
	if !ok {
		return Placeholder
	}
	return fmt.Sprintf("%.2f%%", f*100)
}

// Cell formats a value the way the grid shows it in the given column.
func Cell(columnID string, v any) string {
	switch {
	case currencyColumns[columnID]:
		return Currency(v)
	case percentColumns[columnID]:
		return Percent(v)
	}
	if v == nil {
		return Placeholder
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return Placeholder
	}
	return s
}

// IsNumericColumn reports whether the column is rendered with a numeric format.
func IsNumericColumn(columnID string) bool {
	return currencyColumns[columnID] || percentColumns[columnID]
}

func toNumber(v any) (float64, bool) {
	switch v.(type) {
	case nil, bool:
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
