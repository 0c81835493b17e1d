package utils

import (
	"strconv"
	"strings"
)

// unitSuffixes is checked longest-first so "kcal" is stripped whole and
// never mis-matched as "cal" leaving a stray "k".
var unitSuffixes = []string{"kcal", "cal", "mg", "g"}

// ParseNutrient normalizes a raw menu cell like "7.6g", "150" or "" into
// a float. The source export has ragged quality, so this parser is
// forgiving: anything unparseable becomes 0 instead of failing the load.
func ParseNutrient(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	lower := strings.ToLower(s)
	for _, suffix := range unitSuffixes {
		if strings.HasSuffix(lower, suffix) {
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
