package controllers

import (
	"net/http"
	"strconv"

	"github.com/adilshaik/uga-nutrition-app/models"
	"github.com/adilshaik/uga-nutrition-app/services"

	"github.com/gin-gonic/gin"
)

type AddLogInput struct {
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Name       string  `json:"name" binding:"required"`
	Hall       string  `json:"hall"`
	MealPeriod string  `json:"meal_period"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Fiber      float64 `json:"fiber"`
	Servings   float64 `json:"servings"`
	FoodGroup  string  `json:"food_group"`
}

// POST /log
func AddLogEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	var input AddLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.LogEntry{
		Date:       input.Date,
		Time:       input.Time,
		Name:       input.Name,
		Hall:       input.Hall,
		MealPeriod: input.MealPeriod,
		Calories:   input.Calories,
		Protein:    input.Protein,
		Carbs:      input.Carbs,
		Fat:        input.Fat,
		Fiber:      input.Fiber,
		Servings:   input.Servings,
		FoodGroup:  models.FoodGroup(input.FoodGroup),
		Source:     models.SourceMenu,
	}
	if err := services.AddLogEntry(uid, &entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /log?date=YYYY-MM-DD
func ListLog(c *gin.Context) {
	uid := c.GetUint("userID")

	entries, err := services.ListLogEntries(uid, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// PATCH /log/:id/servings
func UpdateLogServings(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var req struct {
		Servings float64 `json:"servings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.UpdateServings(uid, uint(id), req.Servings)
	if err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /log/:id
func DeleteLogEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := services.DeleteLogEntry(uid, uint(id)); err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /log
func ClearLog(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.ClearLog(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /log/totals?date=YYYY-MM-DD
func LogTotals(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}

	totals, err := services.DailyTotals(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}

// GET /log/export
func ExportLog(c *gin.Context) {
	uid := c.GetUint("userID")

	csvData, err := services.ExportLogCSV(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="food_log.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csvData))
}
