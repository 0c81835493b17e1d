package utils

import (
	"math"

	"github.com/adilshaik/uga-nutrition-app/models"
)

// TargetRange is a {low, high} band for one macro.
type TargetRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// TargetRanges carries the per-macro bands for one day.
type TargetRanges struct {
	Calories TargetRange `json:"calories"`
	Protein  TargetRange `json:"protein"`
	Carbs    TargetRange `json:"carbs"`
	Fat      TargetRange `json:"fat"`
	Fiber    TargetRange `json:"fiber"`
}

// RangeVerdict says where a consumed total sits relative to its band.
type RangeVerdict string

const (
	VerdictUnder  RangeVerdict = "under"
	VerdictWithin RangeVerdict = "within"
	VerdictOver   RangeVerdict = "over"
)

// RangeComparison is the per-macro verdict set for one day.
type RangeComparison struct {
	Calories RangeVerdict `json:"calories"`
	Protein  RangeVerdict `json:"protein"`
	Carbs    RangeVerdict `json:"carbs"`
	Fat      RangeVerdict `json:"fat"`
	Fiber    RangeVerdict `json:"fiber"`
}

// Day-type multiplier pairs applied to the base target. Fiber keeps a
// fixed absolute band regardless of day type.
var dayTypeMultipliers = map[models.DayType][2]float64{
	models.DayTypeRest:       {0.85, 0.95},
	models.DayTypeActiveRest: {0.95, 1.05},
	models.DayTypeTraining:   {1.00, 1.15},
}

const (
	fiberBandLow  = 25.0
	fiberBandHigh = 35.0
)

// RangesFor applies the day-type multiplier pair to a base target.
// Unknown day types get the active_rest band.
func RangesFor(target models.DailyTarget, dayType models.DayType) TargetRanges {
	pair, ok := dayTypeMultipliers[dayType]
	if !ok {
		pair = dayTypeMultipliers[models.DayTypeActiveRest]
	}

	scale := func(base float64) TargetRange {
		return TargetRange{
			Low:  math.Round(base * pair[0]),
			High: math.Round(base * pair[1]),
		}
	}

	return TargetRanges{
		Calories: scale(target.Calories),
		Protein:  scale(target.Protein),
		Carbs:    scale(target.Carbs),
		Fat:      scale(target.Fat),
		Fiber:    TargetRange{Low: fiberBandLow, High: fiberBandHigh},
	}
}

// CompareToRanges maps each consumed total onto its band.
func CompareToRanges(totals models.MacroTotals, ranges TargetRanges) RangeComparison {
	verdict := func(v float64, r TargetRange) RangeVerdict {
		switch {
		case v < r.Low:
			return VerdictUnder
		case v > r.High:
			return VerdictOver
		default:
			return VerdictWithin
		}
	}

	return RangeComparison{
		Calories: verdict(totals.Calories, ranges.Calories),
		Protein:  verdict(totals.Protein, ranges.Protein),
		Carbs:    verdict(totals.Carbs, ranges.Carbs),
		Fat:      verdict(totals.Fat, ranges.Fat),
		Fiber:    verdict(totals.Fiber, ranges.Fiber),
	}
}
