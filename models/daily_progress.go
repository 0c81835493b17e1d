package models

import "gorm.io/gorm"

// DailyProgress is a per-day snapshot of servings-scaled totals,
// upserted whenever totals are computed for a date. Feeds the
// progress history and summary endpoints.
type DailyProgress struct {
	gorm.Model
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Date   string `gorm:"index;not null" json:"date"` // YYYY-MM-DD

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}
