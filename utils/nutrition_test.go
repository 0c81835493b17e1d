package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNutrient(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"7.6g", 7.6},
		{"150", 150},
		{"3.2kcal", 3.2},
		{"250cal", 250},
		{"800mg", 800},
		{" 12.5 g ", 12.5},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"-40", 0},
		{"12G", 12},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseNutrient(tc.raw), "raw=%q", tc.raw)
	}
}

func TestParseNutrientKcalNotSplitAsCal(t *testing.T) {
	// "kcal" must be stripped as one suffix, not leave a trailing "k"
	assert.Equal(t, 95.0, ParseNutrient("95kcal"))
}
