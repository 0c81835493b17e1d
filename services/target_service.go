package services

import (
	"errors"
	"time"

	"github.com/adilshaik/uga-nutrition-app/config"
	"github.com/adilshaik/uga-nutrition-app/models"
	"github.com/adilshaik/uga-nutrition-app/utils"

	"gorm.io/gorm"
)

// TargetInput carries the onboarding body metrics and goal selection.
type TargetInput struct {
	WeightLbs     float64 `json:"weight_lbs" binding:"required"`
	HeightFt      int     `json:"height_ft" binding:"required"`
	HeightIn      int     `json:"height_in"`
	Age           int     `json:"age" binding:"required"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
	GoalType      string  `json:"goal_type"`
}

// DeriveTargets computes daily macro targets from body metrics.
// Calories come from Mifflin-St Jeor TDEE plus the goal delta; protein
// from the per-lb factor; carbs fill 45% of calories at 4 kcal/g and
// fat 25% at 9 kcal/g; fiber and sodium are fixed guidance values.
func DeriveTargets(in TargetInput) models.DailyTarget {
	heightCm := (float64(in.HeightFt)*12 + float64(in.HeightIn)) * 2.54
	weightKg := in.WeightLbs * 0.453592

	bmr := utils.CalculateBMR(heightCm, weightKg, in.Age, in.Sex)
	tdee := utils.TDEE(bmr, in.ActivityLevel)

	calDelta, proteinPerLb := utils.GoalAdjustment(in.GoalType)
	calories := float64(int(tdee + calDelta))

	return models.DailyTarget{
		Calories: calories,
		Protein:  float64(int(in.WeightLbs * proteinPerLb)),
		Carbs:    float64(int(calories * 0.45 / 4)),
		Fat:      float64(int(calories * 0.25 / 9)),
		Fiber:    30,
		Sodium:   2300,
	}
}

// ComputeAndSaveTargets derives targets for a user, stores them, saves
// the body metrics on the profile and marks onboarding complete.
func ComputeAndSaveTargets(userID uint, in TargetInput) (*models.DailyTarget, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	target := DeriveTargets(in)
	target.UserID = userID

	var existing models.DailyTarget
	err := config.DB.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := config.DB.Create(&target).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		existing.Calories = target.Calories
		existing.Protein = target.Protein
		existing.Carbs = target.Carbs
		existing.Fat = target.Fat
		existing.Fiber = target.Fiber
		existing.Sodium = target.Sodium
		if err := config.DB.Save(&existing).Error; err != nil {
			return nil, err
		}
		target = existing
	}

	user.WeightLbs = in.WeightLbs
	user.HeightFt = in.HeightFt
	user.HeightIn = in.HeightIn
	user.Age = in.Age
	user.Sex = in.Sex
	user.ActivityLevel = in.ActivityLevel
	user.GoalType = in.GoalType
	user.Onboarded = true
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	return &target, nil
}

// GetTargets fetches the user's stored targets; a zero-value target if
// none have been computed yet.
func GetTargets(userID uint) (*models.DailyTarget, error) {
	var target models.DailyTarget
	err := config.DB.Where("user_id = ?", userID).First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DailyTarget{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// UpdateTargets overwrites the stored targets with caller-supplied
// values (manual adjustment after onboarding).
func UpdateTargets(userID uint, t models.DailyTarget) error {
	var existing models.DailyTarget
	err := config.DB.Where("user_id = ?", userID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t.UserID = userID
		return config.DB.Create(&t).Error
	}
	if err != nil {
		return err
	}

	existing.Calories = t.Calories
	existing.Protein = t.Protein
	existing.Carbs = t.Carbs
	existing.Fat = t.Fat
	existing.Fiber = t.Fiber
	existing.Sodium = t.Sodium
	return config.DB.Save(&existing).Error
}

// SetDayType upserts the day-type selection for one date.
func SetDayType(userID uint, date string, dayType models.DayType) error {
	if !dayType.Valid() {
		return errors.New("unknown day type")
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	entry := models.DayTypeLog{UserID: userID, Date: date, DayType: dayType}
	return config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(entry).
		FirstOrCreate(&entry).Error
}

// GetDayType returns the selection for a date, active_rest when unset.
func GetDayType(userID uint, date string) models.DayType {
	var entry models.DayTypeLog
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		First(&entry).Error
	if err != nil {
		return models.DayTypeActiveRest
	}
	return entry.DayType
}

// TargetRangesFor combines stored targets with the date's day type.
func TargetRangesFor(userID uint, date string) (utils.TargetRanges, models.DayType, error) {
	target, err := GetTargets(userID)
	if err != nil {
		return utils.TargetRanges{}, "", err
	}
	dayType := GetDayType(userID, date)
	return utils.RangesFor(*target, dayType), dayType, nil
}
