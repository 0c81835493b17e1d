package services

import (
	"fmt"
	"time"

	"github.com/adilshaik/uga-nutrition-app/models"
	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists a target-range alert and fans it out to the
// user's websocket clients and push endpoints. Safe to call anywhere.
func EmitAlert(userID uint, typ, metric, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, Type: typ, Metric: metric, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Nutrition alert", message, map[string]string{
			"type": typ, "metric": metric, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// ListAlerts returns the user's alerts, newest first.
func ListAlerts(db *gorm.DB, userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	var alerts []models.Alert
	err := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
