package models

import "gorm.io/gorm"

// DayType is the coarse activity-level selector that widens or shifts
// the daily target range via fixed multiplier pairs.
type DayType string

const (
	DayTypeRest       DayType = "rest"
	DayTypeActiveRest DayType = "active_rest"
	DayTypeTraining   DayType = "training"
)

// Valid reports whether t is one of the known day types.
func (t DayType) Valid() bool {
	switch t {
	case DayTypeRest, DayTypeActiveRest, DayTypeTraining:
		return true
	}
	return false
}

// DayTypeLog records the day type a user selected for one calendar
// date. Upserted by (user_id, date); active_rest when absent.
type DayTypeLog struct {
	gorm.Model
	UserID  uint    `gorm:"index;not null" json:"user_id"`
	Date    string  `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	DayType DayType `gorm:"size:16" json:"day_type"`
}
