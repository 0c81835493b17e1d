package services

import (
	"math"
	"time"

	"github.com/adilshaik/uga-nutrition-app/config"
	"github.com/adilshaik/uga-nutrition-app/models"
	"github.com/adilshaik/uga-nutrition-app/utils"
)

// DailyStatus is the full picture for one date: totals, the day-type
// adjusted ranges, and where the totals sit in them.
type DailyStatus struct {
	Date    string                `json:"date"`
	DayType models.DayType        `json:"day_type"`
	Totals  models.MacroTotals    `json:"totals"`
	Ranges  utils.TargetRanges    `json:"ranges"`
	Verdict utils.RangeComparison `json:"verdict"`
}

// StatusFor aggregates a date's log and compares it to the day's
// target ranges.
func StatusFor(userID uint, date string) (*DailyStatus, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	totals, err := DailyTotals(userID, date)
	if err != nil {
		return nil, err
	}

	ranges, dayType, err := TargetRangesFor(userID, date)
	if err != nil {
		return nil, err
	}

	return &DailyStatus{
		Date:    date,
		DayType: dayType,
		Totals:  totals,
		Ranges:  ranges,
		Verdict: utils.CompareToRanges(totals, ranges),
	}, nil
}

// ProgressHistory returns the stored per-day snapshots, newest first.
func ProgressHistory(userID uint) ([]models.DailyProgress, error) {
	var rows []models.DailyProgress
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

// ProgressSummary averages the snapshots over a date range and counts
// target adherence.
type ProgressSummary struct {
	From        string             `json:"from"`
	To          string             `json:"to"`
	DaysCounted int                `json:"days_counted"`
	Averages    models.MacroTotals `json:"averages"`
	DaysHit     struct {
		Calories int `json:"calories"`
		Protein  int `json:"protein"`
	} `json:"days_hit"`
}

// Summarize averages consumed macros over the snapshots between from
// and to (inclusive, YYYY-MM-DD) and counts the days whose calories
// and protein landed within the user's base target.
func Summarize(userID uint, from, to string) (*ProgressSummary, error) {
	var rows []models.DailyProgress
	if err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	target, err := GetTargets(userID)
	if err != nil {
		return nil, err
	}

	sum := &ProgressSummary{From: from, To: to, DaysCounted: len(rows)}
	den := float64(len(rows))
	if den == 0 {
		den = 1 // avoid div by zero; averages stay zero
	}

	for _, r := range rows {
		sum.Averages.Calories += r.Calories
		sum.Averages.Protein += r.Protein
		sum.Averages.Carbs += r.Carbs
		sum.Averages.Fat += r.Fat
		sum.Averages.Fiber += r.Fiber

		if target.Calories > 0 && math.Abs(r.Calories-target.Calories) <= target.Calories*0.1 {
			sum.DaysHit.Calories++
		}
		if target.Protein > 0 && r.Protein >= target.Protein {
			sum.DaysHit.Protein++
		}
	}

	sum.Averages.Calories = round1(sum.Averages.Calories / den)
	sum.Averages.Protein = round1(sum.Averages.Protein / den)
	sum.Averages.Carbs = round1(sum.Averages.Carbs / den)
	sum.Averages.Fat = round1(sum.Averages.Fat / den)
	sum.Averages.Fiber = round1(sum.Averages.Fiber / den)

	return sum, nil
}
