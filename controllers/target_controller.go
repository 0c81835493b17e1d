package controllers

import (
	"net/http"
	"time"

	"github.com/adilshaik/uga-nutrition-app/models"
	"github.com/adilshaik/uga-nutrition-app/services"

	"github.com/gin-gonic/gin"
)

// POST /targets/compute
func ComputeTargets(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.TargetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target, err := services.ComputeAndSaveTargets(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, target)
}

// GET /targets
func GetTargets(c *gin.Context) {
	uid := c.GetUint("userID")

	target, err := services.GetTargets(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, target)
}

// PUT /targets
func UpdateTargets(c *gin.Context) {
	uid := c.GetUint("userID")

	var req models.DailyTarget
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateTargets(uid, req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /targets/day-type  { "date": "2026-03-01", "day_type": "training" }
func SetDayType(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Date    string         `json:"date"`
		DayType models.DayType `json:"day_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetDayType(uid, req.Date, req.DayType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /targets/ranges?date=YYYY-MM-DD
func GetTargetRanges(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	ranges, dayType, err := services.TargetRangesFor(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "day_type": dayType, "ranges": ranges})
}
