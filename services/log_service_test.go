package services

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/adilshaik/uga-nutrition-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalsForSumsMatchingDateOnly(t *testing.T) {
	entries := []models.LogEntry{
		{Date: "2026-09-01", Calories: 200, Protein: 10, Carbs: 20, Fat: 5, Fiber: 2, Servings: 1},
		{Date: "2026-09-01", Calories: 100, Protein: 5, Carbs: 10, Fat: 2, Fiber: 1, Servings: 2},
		{Date: "2026-09-02", Calories: 50, Protein: 1, Carbs: 5, Fat: 1, Fiber: 0, Servings: 1},
	}

	d1 := TotalsFor(entries, "2026-09-01")
	assert.Equal(t, 400.0, d1.Calories)
	assert.Equal(t, 20.0, d1.Protein)
	assert.Equal(t, 40.0, d1.Carbs)
	assert.Equal(t, 9.0, d1.Fat)
	assert.Equal(t, 4.0, d1.Fiber)

	d2 := TotalsFor(entries, "2026-09-02")
	assert.Equal(t, 50.0, d2.Calories)

	none := TotalsFor(entries, "2026-09-03")
	assert.Equal(t, models.MacroTotals{}, none)
}

func TestTotalsForTreatsZeroServingsAsOne(t *testing.T) {
	entries := []models.LogEntry{
		{Date: "2026-09-01", Calories: 300, Servings: 0},
	}
	totals := TotalsFor(entries, "2026-09-01")
	assert.Equal(t, 300.0, totals.Calories)
}

func TestTotalsForEmptyLog(t *testing.T) {
	assert.Equal(t, models.MacroTotals{}, TotalsFor(nil, "2026-09-01"))
}

func TestRenderLogCSVQuotesSpecialCharacters(t *testing.T) {
	entries := []models.LogEntry{
		{
			Date: "2026-09-01", Time: "12:30",
			Name: "Macaroni, Baked", Hall: "Bolton", MealPeriod: "Lunch",
			Calories: 310, Protein: 12.5, Carbs: 40, Fat: 11, Fiber: 2,
			Servings: 1.5,
		},
		{
			Date: "2026-09-01", Time: "18:00",
			Name: `Chicken "Parmesan"`, Hall: "Snelling", MealPeriod: "Dinner",
			Calories: 420, Protein: 38, Carbs: 22, Fat: 18, Fiber: 3,
			Servings: 1,
		},
	}

	out, err := RenderLogCSV(entries)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header := rows[0]
	assert.Equal(t, []string{
		"date", "time", "name", "hall", "meal",
		"calories", "protein", "carbs", "fat", "fiber", "servings",
	}, header)

	// comma and quote in names survive a round trip intact
	assert.Equal(t, "Macaroni, Baked", rows[1][2])
	assert.Equal(t, `Chicken "Parmesan"`, rows[2][2])
	assert.Equal(t, "12.5", rows[1][6])
	assert.Equal(t, "1.5", rows[1][10])
	for _, row := range rows[1:] {
		assert.Len(t, row, len(header))
	}
}

func TestRenderLogCSVEmptyLog(t *testing.T) {
	out, err := RenderLogCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "date,time,name,hall,meal,calories,protein,carbs,fat,fiber,servings\n", out)
}
