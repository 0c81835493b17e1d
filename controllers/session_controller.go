package controllers

import (
	"net/http"

	"github.com/adilshaik/uga-nutrition-app/services"

	"github.com/gin-gonic/gin"
)

// GET /session/export: download the session document (profile, goals,
// targets, food log, onboarding flag, day type) as JSON.
func ExportSession(c *gin.Context) {
	uid := c.GetUint("userID")

	doc, err := services.ExportSession(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="nutrition_session.json"`)
	c.JSON(http.StatusOK, doc)
}

// POST /session/import: restore a previously exported document.
// Missing sections are skipped, not rejected.
func ImportSession(c *gin.Context) {
	uid := c.GetUint("userID")

	var doc services.SessionDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ImportSession(uid, doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session imported"})
}
