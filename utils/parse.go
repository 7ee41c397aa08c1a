// Package utils contains tolerant parsing helpers for the loosely typed
// vendor datasets. Every function here is total: malformed input maps to
// a documented fallback value, never an error.
package utils

import (
	"strconv"
	"strings"
)

// String coerces a raw JSON value to a string. Nil becomes the empty
// string; JSON numbers are formatted without a trailing ".0" when they
// are integral.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// First returns the value itself for scalars and the first element for
// lists. Empty lists and nil map to the empty string.
func First(v any) string {
	switch t := v.(type) {
	case []any:
		if len(t) == 0 {
			return ""
		}
		return First(t[0])
	case []string:
		if len(t) == 0 {
			return ""
		}
		return t[0]
	default:
		return String(v)
	}
}

// OptString returns nil for empty or absent values, mirroring the
// empty-string-to-null cleaning of the source datasets.
func OptString(v any) *string {
	s := strings.TrimSpace(String(v))
	if s == "" {
		return nil
	}
	return &s
}

// Int coerces a raw value to an int, treating empty and malformed input
// as zero.
func Int(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Float coerces a raw value to a float64, treating empty and malformed
// input as zero.
func Float(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// OptFloat coerces a raw value to a float64, returning nil when the
// input is absent or malformed.
func OptFloat(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// OptInt coerces a raw value to an int, returning nil when the input is
// absent or malformed.
func OptInt(v any) *int {
	switch t := v.(type) {
	case float64:
		n := int(t)
		return &n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// OptInt64 coerces a raw value to an int64 (Unix timestamps), returning
// nil when the input is absent or malformed.
func OptInt64(v any) *int64 {
	switch t := v.(type) {
	case float64:
		n := int64(t)
		return &n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// ParseBool interprets loosely typed boolean fields. Raw booleans pass
// through; the strings "true", "1" and "yes" (case-insensitive) are
// true; everything else, including nil, is false.
func ParseBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes":
			return true
		}
	}
	return false
}

// ParseISAFlag interprets the ISA certification field, which additionally
// uses "approved" for certified gear.
func ParseISAFlag(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "true", "approved":
			return true
		}
	}
	return false
}

// ParseMeasure parses a numeric field with an optional unit suffix, e.g.
// "280gr" with suffix "gr" or "32kN" with suffix "kn". Returns nil when
// nothing parses.
func ParseMeasure(v any, suffix string) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	s := strings.ToLower(strings.TrimSpace(String(v)))
	if s == "" {
		return nil
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, strings.ToLower(suffix)))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseWidthRange parses a compatible-width field in the forms "24mm",
// "24mm-26mm" or "24-26". A single value yields (v, v); a range is
// returned ordered regardless of input order; anything unparseable
// yields (0, 0).
func ParseWidthRange(v any) (int, int) {
	s := strings.ToLower(String(v))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "mm", "")
	if s == "" {
		return 0, 0
	}

	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0
		}
		return n, n
	case 2:
		a, errA := strconv.Atoi(parts[0])
		b, errB := strconv.Atoi(parts[1])
		if errA != nil || errB != nil {
			return 0, 0
		}
		if a > b {
			a, b = b, a
		}
		return a, b
	default:
		return 0, 0
	}
}
