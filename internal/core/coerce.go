// Package core holds the fee ledger rules and read-model aggregation. All
// functions here operate on already-materialized tables; nothing in this
// package touches the network.
package core

import (
	"strconv"
	"strings"
)

// CoerceInt converts a cell value from the schema-loose store to an integer.
// The store imposes no typing, so a numeric column can come back as "",
// "1200", "1200.0" or arbitrary text; any value that does not parse yields
// def instead of an error. Corrupt data is masked, not rejected.
func CoerceInt(value string, def int64) int64 {
	s := strings.TrimSpace(value)
	if s == "" {
		return def
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	// Sheets sometimes serializes integers as floats ("800.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int64(f)
		if float64(n) == f {
			return n
		}
	}
	return def
}
