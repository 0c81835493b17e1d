package services

import (
	"time"

	"github.com/adilshaik/uga-nutrition-app/config"
	"github.com/adilshaik/uga-nutrition-app/models"
)

// SessionDocument is the JSON snapshot of a user's session state, kept
// compatible with the document format the app has always exported:
// top-level keys for profile, goals, daily targets, food log,
// onboarding flag and day-type selection.
type SessionDocument struct {
	Profile      *models.User       `json:"profile"`
	Goals        map[string]string  `json:"goals"`
	DailyTargets models.DailyTarget `json:"daily_targets"`
	FoodLog      []models.LogEntry  `json:"food_log"`
	Onboarding   bool               `json:"onboarding"`
	DayType      models.DayType     `json:"day_type"`
}

// ExportSession builds the snapshot for a user.
func ExportSession(userID uint) (*SessionDocument, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	target, err := GetTargets(userID)
	if err != nil {
		return nil, err
	}

	entries, err := ListLogEntries(userID, "")
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	return &SessionDocument{
		Profile: user,
		Goals: map[string]string{
			"type": user.GoalType,
		},
		DailyTargets: *target,
		FoodLog:      entries,
		Onboarding:   user.Onboarded,
		DayType:      GetDayType(userID, today),
	}, nil
}

// ImportSession restores a snapshot. Absent sections are skipped, not
// errors: an old export without a day type or targets still imports.
func ImportSession(userID uint, doc SessionDocument) error {
	if doc.DailyTargets.Calories > 0 {
		if err := UpdateTargets(userID, doc.DailyTargets); err != nil {
			return err
		}
	}

	if doc.DayType.Valid() {
		today := time.Now().Format("2006-01-02")
		if err := SetDayType(userID, today, doc.DayType); err != nil {
			return err
		}
	}

	for _, e := range doc.FoodLog {
		entry := e
		entry.ID = 0
		entry.UserID = userID
		if err := config.DB.Create(&entry).Error; err != nil {
			return err
		}
	}

	if doc.Profile != nil {
		user, err := GetUser(userID)
		if err != nil {
			return err
		}
		if doc.Profile.GoalType != "" {
			user.GoalType = doc.Profile.GoalType
		}
		if doc.Profile.DiningPreference != "" {
			user.DiningPreference = doc.Profile.DiningPreference
		}
		if doc.Profile.DietaryRestrictions != "" {
			user.DietaryRestrictions = doc.Profile.DietaryRestrictions
		}
		user.Onboarded = user.Onboarded || doc.Onboarding
		if err := config.DB.Save(user).Error; err != nil {
			return err
		}
	}

	return nil
}
