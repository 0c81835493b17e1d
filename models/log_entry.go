package models

import "gorm.io/gorm"

// Where a log entry came from.
const (
	SourceMenu    = "menu"
	SourceScanned = "scanned"
)

// LogEntry is one logged consumption event. Date is an opaque
// YYYY-MM-DD string fixed when the entry was logged; daily totals match
// on it exactly, no timezone normalization. Servings scales the stored
// macro values linearly at aggregation time.
type LogEntry struct {
	gorm.Model
	UserID     uint    `gorm:"index;not null" json:"user_id"`
	Date       string  `gorm:"index;not null" json:"date"`
	Time       string  `json:"time"` // HH:MM
	Name       string  `gorm:"not null" json:"name"`
	Hall       string  `json:"hall"`
	MealPeriod string  `json:"meal_period"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Fiber      float64 `json:"fiber"`
	Servings   float64 `gorm:"default:1" json:"servings"`

	FoodGroup FoodGroup `json:"food_group"`
	Source    string    `gorm:"size:16" json:"source"` // "menu" | "scanned"
}
