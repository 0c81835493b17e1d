package services

import (
	"math"
	"testing"

	"github.com/adilshaik/uga-nutrition-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDetectionKnownFood(t *testing.T) {
	est := ResolveDetection("broccoli", 1.0)

	assert.Equal(t, 55.0, est.Calories)
	assert.Equal(t, 3.7, est.Protein)
	assert.Equal(t, 11.2, est.Carbs)
	assert.Equal(t, 0.6, est.Fat)
	assert.Equal(t, 5.1, est.Fiber)
	assert.Equal(t, models.GroupVegetables, est.FoodGroup)
	assert.False(t, est.Generic)
}

func TestResolveDetectionScalesByPortion(t *testing.T) {
	est := ResolveDetection("broccoli", 0.5)

	assert.Equal(t, math.Round(55*0.5), est.Calories, "calories round to whole numbers")
	assert.InDelta(t, 1.9, est.Protein, 0.05)
	assert.InDelta(t, 5.6, est.Carbs, 0.05)
	assert.Equal(t, models.GroupVegetables, est.FoodGroup)

	double := ResolveDetection("baked potato", 2.0)
	assert.Equal(t, 322.0, double.Calories)
	assert.InDelta(t, 73.2, double.Carbs, 0.05)
}

func TestResolveDetectionUnknownLabelIsGeneric(t *testing.T) {
	est := ResolveDetection("unknown_blob", 1.0)

	assert.Equal(t, NutritionEstimate{
		Calories:  50,
		Protein:   2,
		Carbs:     10,
		Fat:       1,
		Fiber:     2,
		FoodGroup: models.GroupOther,
		Generic:   true,
	}, est)
}

func TestResolveDetectionNormalizesLabel(t *testing.T) {
	est := ResolveDetection("  Broccoli ", 1.0)
	assert.False(t, est.Generic)
}

func TestResolveCandidatesFiltersLowConfidence(t *testing.T) {
	detections := []Detection{
		{Label: "broccoli", Confidence: 0.92},
		{Label: "lettuce", Confidence: 0.14},
		{Label: "grapes", Confidence: 0.15},
	}

	out := ResolveCandidates(detections, "medium")
	require.Len(t, out, 2, "0.15 is the inclusive floor")

	assert.Equal(t, "broccoli", out[0].Label)
	assert.Equal(t, "grapes", out[1].Label)
	assert.NotEmpty(t, out[0].ID)
	assert.Equal(t, "1 cup", out[0].PortionLabel)
}

func TestResolveCandidatesRoundsConfidenceToTwoDecimals(t *testing.T) {
	detections := []Detection{
		{Label: "broccoli", Confidence: 0.876},
		{Label: "grapes", Confidence: 0.5231},
	}

	out := ResolveCandidates(detections, "medium")
	require.Len(t, out, 2)
	assert.Equal(t, 0.88, out[0].Confidence)
	assert.Equal(t, 0.52, out[1].Confidence)
}

func TestResolveCandidatesPortionLabels(t *testing.T) {
	detections := []Detection{{Label: "cucumber", Confidence: 0.9}}

	assert.Equal(t, "0.5 cup", ResolveCandidates(detections, "half")[0].PortionLabel)
	assert.Equal(t, "1.5 cups", ResolveCandidates(detections, "large")[0].PortionLabel)
	assert.Equal(t, "2 cups", ResolveCandidates(detections, "extra_large")[0].PortionLabel)
	assert.Equal(t, "1 cup", ResolveCandidates(detections, "whole_item")[0].PortionLabel)
}
