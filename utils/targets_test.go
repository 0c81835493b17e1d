package utils

import (
	"testing"

	"github.com/adilshaik/uga-nutrition-app/models"

	"github.com/stretchr/testify/assert"
)

func baseTarget() models.DailyTarget {
	return models.DailyTarget{
		Calories: 2000,
		Protein:  150,
		Carbs:    225,
		Fat:      56,
		Fiber:    30,
	}
}

func TestRangesForRestDay(t *testing.T) {
	ranges := RangesFor(baseTarget(), models.DayTypeRest)

	assert.Equal(t, TargetRange{Low: 1700, High: 1900}, ranges.Calories)
	assert.Equal(t, TargetRange{Low: 128, High: 143}, ranges.Protein)
}

func TestRangesForTrainingDay(t *testing.T) {
	ranges := RangesFor(baseTarget(), models.DayTypeTraining)

	assert.Equal(t, TargetRange{Low: 2000, High: 2300}, ranges.Calories)
}

func TestRangesForUnknownDayTypeUsesActiveRest(t *testing.T) {
	ranges := RangesFor(baseTarget(), models.DayType("weird"))

	assert.Equal(t, TargetRange{Low: 1900, High: 2100}, ranges.Calories)
}

func TestRangesForFiberBandIsFixed(t *testing.T) {
	for _, dt := range []models.DayType{models.DayTypeRest, models.DayTypeActiveRest, models.DayTypeTraining} {
		ranges := RangesFor(baseTarget(), dt)
		assert.Equal(t, TargetRange{Low: 25, High: 35}, ranges.Fiber, "day type %s", dt)
	}
}

func TestCompareToRanges(t *testing.T) {
	ranges := RangesFor(baseTarget(), models.DayTypeRest)

	cmp := CompareToRanges(models.MacroTotals{
		Calories: 1600, // below 1700
		Protein:  135,  // inside 128-143
		Carbs:    250,  // above the rest band
		Fat:      50,   // inside
		Fiber:    25,   // boundary counts as within
	}, ranges)

	assert.Equal(t, VerdictUnder, cmp.Calories)
	assert.Equal(t, VerdictWithin, cmp.Protein)
	assert.Equal(t, VerdictOver, cmp.Carbs)
	assert.Equal(t, VerdictWithin, cmp.Fat)
	assert.Equal(t, VerdictWithin, cmp.Fiber)
}
