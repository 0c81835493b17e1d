package controllers

import (
	"net/http"
	"time"

	"github.com/adilshaik/uga-nutrition-app/models"
	"github.com/adilshaik/uga-nutrition-app/services"
	"github.com/adilshaik/uga-nutrition-app/utils"

	"github.com/gin-gonic/gin"
)

type ScanController struct {
	Vision *services.VisionService
}

func NewScanController(v *services.VisionService) *ScanController {
	return &ScanController{Vision: v}
}

type ScanRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	Portion     string `json:"portion"` // half|medium|large|extra_large|whole_item
}

// POST /scan: upload a plate photo, detect foods, return resolved
// candidates. Nothing is logged until the user confirms.
func (sc *ScanController) Scan(c *gin.Context) {
	uid := c.GetUint("userID")

	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Portion == "" {
		req.Portion = "medium"
	}

	imageData, contentType, err := utils.DecodeBase64Image(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photoURL, err := utils.UploadPlatePhoto(imageData, contentType, uid)
	if err != nil {
		// the scan still works without the archived photo
		photoURL = ""
	}

	detections, err := sc.Vision.DetectFoods(imageData)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"candidates": []services.Candidate{},
			"photo_url":  photoURL,
			"message":    "no foods detected in this image",
		})
		return
	}

	candidates := services.ResolveCandidates(detections, req.Portion)
	if len(candidates) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"candidates": candidates,
			"photo_url":  photoURL,
			"message":    "no foods detected in this image",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates, "photo_url": photoURL})
}

type ConfirmScanRequest struct {
	Label   string `json:"label" binding:"required"`
	Portion string `json:"portion"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// POST /scan/confirm: persist a confirmed candidate as a log entry
// with source=scanned.
func (sc *ScanController) Confirm(c *gin.Context) {
	uid := c.GetUint("userID")

	var req ConfirmScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Portion == "" {
		req.Portion = "medium"
	}

	estimate := services.ResolveDetection(req.Label, utils.PortionMultiplier(req.Portion))

	entry := models.LogEntry{
		Date:       req.Date,
		Time:       req.Time,
		Name:       req.Label,
		MealPeriod: mealPeriodForNow(),
		Calories:   estimate.Calories,
		Protein:    estimate.Protein,
		Carbs:      estimate.Carbs,
		Fat:        estimate.Fat,
		Fiber:      estimate.Fiber,
		Servings:   1,
		FoodGroup:  estimate.FoodGroup,
		Source:     models.SourceScanned,
	}
	if err := services.AddLogEntry(uid, &entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /scan/portions
func (sc *ScanController) Portions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"portions": utils.PortionNames()})
}

func mealPeriodForNow() string {
	switch h := time.Now().Hour(); {
	case h < 11:
		return "Breakfast"
	case h < 16:
		return "Lunch"
	default:
		return "Dinner"
	}
}
