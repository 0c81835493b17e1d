package utils

import (
	"testing"

	"github.com/adilshaik/uga-nutrition-app/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFoodGroup(t *testing.T) {
	cases := []struct {
		category string
		name     string
		want     models.FoodGroup
	}{
		{"Entrees", "Grilled Chicken Breast", models.GroupProtein},
		{"", "Steamed Broccoli", models.GroupVegetables},
		{"", "Apple Slices", models.GroupFruits},
		{"Sides", "Brown Rice", models.GroupGrains},
		{"", "Greek Yogurt Parfait", models.GroupDairy},
		{"", "Ranch Dressing", models.GroupFatsOils},
		{"Desserts", "Chocolate Chip Cookie", models.GroupSweets},
		{"", "Lemonade", models.GroupBeverages},
		{"", "xyzzy", models.GroupOther},
		{"", "", models.GroupOther},
	}

	for _, tc := range cases {
		got := ClassifyFoodGroup(tc.category, tc.name)
		assert.Equal(t, tc.want, got, "category=%q name=%q", tc.category, tc.name)
	}
}

func TestClassifyFoodGroupUsesCategoryToo(t *testing.T) {
	// name alone says nothing, category carries the signal
	assert.Equal(t, models.GroupBeverages, ClassifyFoodGroup("Beverages", "House Blend"))
}

func TestClassifyFoodGroupTieBreakOrder(t *testing.T) {
	// one protein keyword vs one grain keyword, same score: the
	// earlier-listed group wins
	assert.Equal(t, models.GroupProtein, ClassifyFoodGroup("", "Chicken and Rice"))
}

func TestClassifyFoodGroupHigherScoreWins(t *testing.T) {
	// two grain hits beat the single protein hit
	assert.Equal(t, models.GroupGrains, ClassifyFoodGroup("", "Egg Noodle Pasta"))
}
