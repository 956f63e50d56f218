// Package format renders API values for human-facing output such as the CLI
// dashboard tables.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Currency renders a dollar amount with two decimals; nil renders as a dash.
func Currency(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *v)
}

// Date renders a timestamp as YYYY-MM-DD; nil and zero render as a dash.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// Hours renders an hour quantity as "3.5h"; nil renders as a dash.
func Hours(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1fh", *v)
}

// Label turns a kebab-case enum value into a display label,
// e.g. "in-progress" becomes "In Progress".
func Label(v string) string {
	if v == "" {
		return "-"
	}
	words := strings.Split(v, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// StockState classifies a spare part's quantity against its minimum stock.
func StockState(quantity, minStock int) string {
	switch {
	case quantity <= 0:
		return "out-of-stock"
	case quantity < minStock:
		return "low"
	default:
		return "ok"
	}
}
