package controllers

import (
	"net/http"
	"time"

	"github.com/adilshaik/uga-nutrition-app/services"

	"github.com/gin-gonic/gin"
)

// GET /progress?date=YYYY-MM-DD
func GetProgress(c *gin.Context) {
	uid := c.GetUint("userID")

	status, err := services.StatusFor(uid, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// GET /progress/history
func GetProgressHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	history, err := services.ProgressHistory(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// GET /progress/summary?from=YYYY-MM-DD&to=YYYY-MM-DD (defaults: last 7 days)
func GetProgressSummary(c *gin.Context) {
	uid := c.GetUint("userID")

	to := c.Query("to")
	from := c.Query("from")
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}
	if from == "" {
		from = time.Now().AddDate(0, 0, -6).Format("2006-01-02")
	}

	summary, err := services.Summarize(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
