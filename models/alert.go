package models

import "time"

// Alert is raised when a day's totals cross outside the day-type
// target range (e.g. calories over the high bound).
type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Type      string    `gorm:"size:20" json:"type"` // "warning" | "info"
	Metric    string    `gorm:"size:20" json:"metric"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
