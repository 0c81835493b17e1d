package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortionMultiplier(t *testing.T) {
	assert.Equal(t, 0.5, PortionMultiplier("half"))
	assert.Equal(t, 1.0, PortionMultiplier("medium"))
	assert.Equal(t, 1.5, PortionMultiplier("large"))
	assert.Equal(t, 2.0, PortionMultiplier("extra_large"))
	assert.Equal(t, 1.0, PortionMultiplier("whole_item"))
	// anything unrecognized behaves like medium
	assert.Equal(t, 1.0, PortionMultiplier("gigantic"))
}

func TestPortionNamesCoverMultipliers(t *testing.T) {
	for _, name := range PortionNames() {
		_, ok := portionMultipliers[name]
		assert.True(t, ok, "name %q has no multiplier", name)
	}
}
