package controllers

import (
	"net/http"
	"strconv"

	"github.com/adilshaik/uga-nutrition-app/config"
	"github.com/adilshaik/uga-nutrition-app/services"

	"github.com/gin-gonic/gin"
)

// GET /alerts?limit=20
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	alerts, err := services.ListAlerts(config.DB, uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
