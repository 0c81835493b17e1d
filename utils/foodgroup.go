package utils

import (
	"strings"

	"github.com/adilshaik/uga-nutrition-app/models"
)

// foodGroupKeywords pairs each food group with its keyword set. The
// slice order is the canonical tie-break order: when two groups land on
// the same score, the one listed first wins. Edit the keyword lists
// freely; the scoring loop below never changes.
var foodGroupKeywords = []struct {
	Group    models.FoodGroup
	Keywords []string
}{
	{models.GroupProtein, []string{
		"chicken", "beef", "pork", "turkey", "fish", "salmon", "tuna",
		"shrimp", "egg", "tofu", "bean", "lentil", "steak", "ham",
		"sausage", "bacon", "meatball", "burger", "tilapia", "brisket",
	}},
	{models.GroupGrains, []string{
		"rice", "bread", "pasta", "noodle", "oat", "cereal", "bagel",
		"tortilla", "quinoa", "potato", "grits", "biscuit", "roll",
		"waffle", "pancake", "couscous", "barley", "grain",
	}},
	{models.GroupVegetables, []string{
		"broccoli", "spinach", "carrot", "salad", "greens", "kale",
		"pepper", "squash", "zucchini", "cauliflower", "cabbage",
		"mushroom", "tomato", "cucumber", "lettuce", "vegetable",
		"onion", "corn", "asparagus",
	}},
	{models.GroupFruits, []string{
		"apple", "banana", "orange", "berry", "berries", "grape",
		"melon", "pineapple", "peach", "pear", "mango", "fruit",
		"strawberry", "watermelon", "cantaloupe", "kiwi",
	}},
	{models.GroupDairy, []string{
		"milk", "cheese", "yogurt", "parfait", "mozzarella", "cheddar",
		"cottage", "kefir",
	}},
	{models.GroupFatsOils, []string{
		"oil", "butter", "margarine", "dressing", "mayo", "avocado",
		"ranch", "vinaigrette",
	}},
	{models.GroupSweets, []string{
		"cookie", "cake", "brownie", "pie", "ice cream", "pudding",
		"donut", "dessert", "candy", "chocolate", "muffin", "sweet",
		"cobbler",
	}},
	{models.GroupBeverages, []string{
		"juice", "soda", "coffee", "tea", "lemonade", "smoothie",
		"drink", "beverage", "cocoa",
	}},
}

// ClassifyFoodGroup buckets a menu item into a food group by keyword
// scoring over the item name and its menu category. Each keyword counts
// once (presence, not frequency). Only a strictly higher score replaces
// the current best, so the first-listed group among equal top scores
// wins. Everything unmatched falls through to Other.
func ClassifyFoodGroup(category, name string) models.FoodGroup {
	text := strings.ToLower(name + " " + category)

	best := models.GroupOther
	bestScore := 0
	for _, entry := range foodGroupKeywords {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.Group
			bestScore = score
		}
	}
	return best
}
