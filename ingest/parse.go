// Package ingest normalizes vendor CSV exports (Baseball Savant, Rapsodo,
// Blast) into the canonical row types stored in the database. Mappers are
// pure transforms over one parsed row: malformed individual fields degrade
// to null, rows missing a vendor's required fields are dropped.
package ingest

import (
	"math"
	"strconv"
	"strings"
)

// ParseNum coerces a raw CSV cell to a number. "-", the empty string and
// non-numeric text all map to nil rather than an error; the dash is what
// Rapsodo writes for missing readings.
func ParseNum(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}

// Row is one parsed CSV record keyed by header name.
type Row map[string]string

// pick resolves a field from an ordered list of candidate header spellings.
// Export versions disagree on naming ("Total Spin" vs "Spin Rate" vs
// "SpinRate"), so every canonical field carries its own candidate list and
// header drift stays a data change.
func pick(r Row, keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// pickNum resolves like pick and then coerces numerically.
func pickNum(r Row, keys ...string) *float64 {
	return ParseNum(pick(r, keys...))
}

// roundPtr integer-rounds a nullable value; spin rates are stored as whole
// rpm the way the device reports them.
func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := math.Round(*v)
	return &out
}
