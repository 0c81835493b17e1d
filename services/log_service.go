package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adilshaik/uga-nutrition-app/config"
	"github.com/adilshaik/uga-nutrition-app/models"
	"github.com/adilshaik/uga-nutrition-app/utils"

	"gorm.io/gorm"
)

// TotalsFor sums servings-scaled macros over the entries whose date
// matches exactly. Pure; the caller supplies the entries.
func TotalsFor(entries []models.LogEntry, date string) models.MacroTotals {
	var t models.MacroTotals
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		servings := e.Servings
		if servings <= 0 {
			servings = 1
		}
		t.Calories += e.Calories * servings
		t.Protein += e.Protein * servings
		t.Carbs += e.Carbs * servings
		t.Fat += e.Fat * servings
		t.Fiber += e.Fiber * servings
	}
	return t
}

// AddLogEntry appends a consumption event to the user's food log.
func AddLogEntry(userID uint, entry *models.LogEntry) error {
	if entry.Name == "" {
		return errors.New("entry name is required")
	}
	entry.UserID = userID
	if entry.Date == "" {
		entry.Date = time.Now().Format("2006-01-02")
	}
	if entry.Time == "" {
		entry.Time = time.Now().Format("15:04")
	}
	if entry.Servings <= 0 {
		entry.Servings = 1
	}
	if entry.FoodGroup == "" {
		entry.FoodGroup = models.GroupOther
	}
	if entry.Source == "" {
		entry.Source = models.SourceMenu
	}

	if err := config.DB.Create(entry).Error; err != nil {
		return err
	}
	afterLogMutation(userID, entry.Date)
	return nil
}

// ListLogEntries returns the user's entries, optionally for one date,
// oldest first.
func ListLogEntries(userID uint, date string) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	q := config.DB.Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	err := q.Order("date ASC, time ASC, id ASC").Find(&entries).Error
	return entries, err
}

// UpdateServings is the only permitted edit to a logged entry.
func UpdateServings(userID, entryID uint, servings float64) (*models.LogEntry, error) {
	if servings <= 0 {
		return nil, errors.New("servings must be positive")
	}

	var entry models.LogEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}

	entry.Servings = servings
	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}
	afterLogMutation(userID, entry.Date)
	return &entry, nil
}

// DeleteLogEntry removes one entry.
func DeleteLogEntry(userID, entryID uint) error {
	var entry models.LogEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return err
	}
	if err := config.DB.Delete(&entry).Error; err != nil {
		return err
	}
	afterLogMutation(userID, entry.Date)
	return nil
}

// ClearLog wipes the user's entire food log.
func ClearLog(userID uint) error {
	if err := config.DB.
		Where("user_id = ?", userID).
		Delete(&models.LogEntry{}).Error; err != nil {
		return err
	}
	afterLogMutation(userID, time.Now().Format("2006-01-02"))
	return nil
}

// DailyTotals aggregates one date's entries and snapshots the result
// into DailyProgress.
func DailyTotals(userID uint, date string) (models.MacroTotals, error) {
	entries, err := ListLogEntries(userID, date)
	if err != nil {
		return models.MacroTotals{}, err
	}
	totals := TotalsFor(entries, date)

	dp := models.DailyProgress{
		UserID:   userID,
		Date:     date,
		Calories: totals.Calories,
		Protein:  totals.Protein,
		Carbs:    totals.Carbs,
		Fat:      totals.Fat,
		Fiber:    totals.Fiber,
	}
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(dp).
		FirstOrCreate(&dp).Error; err != nil {
		return totals, err
	}

	return totals, nil
}

// afterLogMutation recomputes today's totals and raises an alert when
// calories cross above the day-type range.
func afterLogMutation(userID uint, date string) {
	totals, err := DailyTotals(userID, date)
	if err != nil {
		return
	}

	target, err := GetTargets(userID)
	if err != nil || target.Calories <= 0 {
		return
	}

	dayType := GetDayType(userID, date)
	ranges := utils.RangesFor(*target, dayType)
	if totals.Calories > ranges.Calories.High {
		EmitAlert(userID, "warning", "calories", fmt.Sprintf(
			"You're at %.0f kcal for %s, above your %.0f kcal high bound.",
			totals.Calories, date, ranges.Calories.High,
		))
		if user, err := GetUser(userID); err == nil && user.Email != "" {
			consumed, high := totals.Calories, ranges.Calories.High
			go func() { _ = utils.SendOverTargetEmail(user.Email, consumed, high) }()
		}
	}
}

// ExportLogCSV renders the user's full log in the download format the
// app has always used.
func ExportLogCSV(userID uint) (string, error) {
	entries, err := ListLogEntries(userID, "")
	if err != nil {
		return "", err
	}
	return RenderLogCSV(entries)
}

// RenderLogCSV writes entries as CSV. Names are open vocabulary
// (scanned labels, quoted menu names), so rows go through a proper
// writer rather than string concatenation.
func RenderLogCSV(entries []models.LogEntry) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{
		"date", "time", "name", "hall", "meal",
		"calories", "protein", "carbs", "fat", "fiber", "servings",
	}); err != nil {
		return "", err
	}

	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, e := range entries {
		if err := w.Write([]string{
			e.Date, e.Time, e.Name, e.Hall, e.MealPeriod,
			num(e.Calories), num(e.Protein), num(e.Carbs),
			num(e.Fat), num(e.Fiber), num(e.Servings),
		}); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// IsNotFound reports whether err is the record-not-found case.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
