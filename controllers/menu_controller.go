package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adilshaik/uga-nutrition-app/config"
	"github.com/adilshaik/uga-nutrition-app/models"
	"github.com/adilshaik/uga-nutrition-app/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(m *services.MenuService) *MenuController {
	return &MenuController{Menu: m}
}

// GET /menu?hall=Bolton&meal=Lunch&group=Protein&q=chicken&max_calories=500&min_protein=20
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Menu.Catalog(config.MenuCSVPath())
	if err != nil {
		if errors.Is(err, services.ErrMenuUnavailable) {
			// empty catalog, explicit signal; the client renders a
			// "menu data unavailable" notice and offers a reload
			c.JSON(http.StatusOK, gin.H{"items": []models.MenuItem{}, "unavailable": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	maxCal, _ := strconv.ParseFloat(c.Query("max_calories"), 64)
	minProt, _ := strconv.ParseFloat(c.Query("min_protein"), 64)

	filtered := services.FilterMenu(items, services.MenuFilter{
		Hall:        c.Query("hall"),
		MealPeriod:  c.Query("meal"),
		FoodGroup:   models.FoodGroup(c.Query("group")),
		Query:       c.Query("q"),
		MaxCalories: maxCal,
		MinProtein:  minProt,
	})

	c.JSON(http.StatusOK, gin.H{"items": filtered, "unavailable": false})
}

// GET /menu/halls
func (mc *MenuController) ListHalls(c *gin.Context) {
	items, err := mc.Menu.Catalog(config.MenuCSVPath())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"halls": []string{}, "unavailable": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"halls": services.Halls(items), "unavailable": false})
}

// POST /menu/reload drops the cache so the next request re-reads the
// source file.
func (mc *MenuController) Reload(c *gin.Context) {
	mc.Menu.Invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "menu cache cleared"})
}
