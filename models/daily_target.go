package models

import "gorm.io/gorm"

// DailyTarget holds each user's daily macro targets, derived at
// onboarding from body metrics and recomputable on demand.
type DailyTarget struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null" json:"user_id"`
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`  // g
	Carbs    float64 `json:"carbs"`    // g
	Fat      float64 `json:"fat"`      // g
	Fiber    float64 `json:"fiber"`    // g
	Sodium   float64 `json:"sodium"`   // mg
}
