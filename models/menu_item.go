package models

// FoodGroup is one label from the fixed closed set used across the
// catalog, the food log and the scan pipeline. Unclassifiable items
// always resolve to GroupOther, never to an empty value.
type FoodGroup string

const (
	GroupProtein    FoodGroup = "Protein"
	GroupGrains     FoodGroup = "Grains"
	GroupVegetables FoodGroup = "Vegetables"
	GroupFruits     FoodGroup = "Fruits"
	GroupDairy      FoodGroup = "Dairy"
	GroupFatsOils   FoodGroup = "Fats & Oils"
	GroupSweets     FoodGroup = "Sweets & Desserts"
	GroupBeverages  FoodGroup = "Beverages"
	GroupOther      FoodGroup = "Other"
)

// MenuItem is one catalog entry from the dining hall menu export.
// The catalog lives in memory only and is rebuilt wholesale on each
// load, so this is a plain value type, not a table.
type MenuItem struct {
	Name        string    `json:"name"`
	Hall        string    `json:"hall"`
	MealPeriod  string    `json:"meal_period"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Fiber       float64   `json:"fiber"`
	ServingSize string    `json:"serving_size"`
	FoodGroup   FoodGroup `json:"food_group"`
}

// Key is the identity used for catalog dedup.
func (m MenuItem) Key() string {
	return m.Name + "|" + m.Hall + "|" + m.MealPeriod
}
