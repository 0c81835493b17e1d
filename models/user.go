package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Body metrics captured at onboarding; targets are derived from
	// these and recomputable whenever they change.
	WeightLbs     float64 `json:"weight_lbs"`
	HeightFt      int     `json:"height_ft"`
	HeightIn      int     `json:"height_in"`
	Age           int     `json:"age"`
	Sex           string  `gorm:"size:16" json:"sex"` // "male" | "female"
	ActivityLevel string  `json:"activity_level"`
	GoalType      string  `json:"goal_type"` // "Build Muscle / Bulk Up", ...

	DiningPreference    string `json:"dining_preference"`    // comma-sep halls
	DietaryRestrictions string `json:"dietary_restrictions"` // comma-sep

	Onboarded bool `gorm:"default:false" json:"onboarded"`
	Disabled  bool `gorm:"default:false" json:"-"`
}
