package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adilshaik/uga-nutrition-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuCSV = `Location Name,Meal Name,Item Name,Serving Size,Calories,Total Fat,Total Carbohydrate,Protein,Dietary Fiber
Bolton,Lunch,Grilled Chicken Breast,4 oz,180,4g,0g,34g,0g
Bolton,Lunch,Steamed Broccoli,1/2 cup,28,0.3g,5.6g,1.9g,2.6g
Bolton,Lunch,Grilled Chicken Breast,4 oz,999,99g,99g,99g,99g
Snelling,Dinner,Grilled Chicken Breast,4 oz,175,4g,0g,33g,0g
Bolton,Lunch,,1 each,100,1g,1g,1g,1g
Village Summit,Breakfast,Blueberry Muffin,1 each,340,12g,52g,5g,not listed
`

func TestLoadMenuFirstDuplicateWins(t *testing.T) {
	items, err := LoadMenu(strings.NewReader(menuCSV), DefaultMenuColumns())
	require.NoError(t, err)

	// blank-name row dropped, Bolton duplicate collapsed
	require.Len(t, items, 4)

	assert.Equal(t, "Grilled Chicken Breast", items[0].Name)
	assert.Equal(t, 180.0, items[0].Calories, "first occurrence keeps its values")

	// same name at another hall is a separate item
	assert.Equal(t, "Snelling", items[2].Hall)
	assert.Equal(t, 175.0, items[2].Calories)
}

func TestLoadMenuPreservesOrderAndDefaults(t *testing.T) {
	items, err := LoadMenu(strings.NewReader(menuCSV), DefaultMenuColumns())
	require.NoError(t, err)

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	assert.Equal(t, []string{
		"Grilled Chicken Breast",
		"Steamed Broccoli",
		"Grilled Chicken Breast",
		"Blueberry Muffin",
	}, names)

	// unparseable fiber cell defaults to zero, not an error
	muffin := items[3]
	assert.Equal(t, 0.0, muffin.Fiber)
	assert.Equal(t, models.GroupFruits, muffin.FoodGroup)
}

func TestLoadMenuClassifiesRows(t *testing.T) {
	items, err := LoadMenu(strings.NewReader(menuCSV), DefaultMenuColumns())
	require.NoError(t, err)

	assert.Equal(t, models.GroupProtein, items[0].FoodGroup)
	assert.Equal(t, models.GroupVegetables, items[1].FoodGroup)
}

func TestLoadMenuBlankServingSize(t *testing.T) {
	csv := "Location Name,Meal Name,Item Name,Serving Size,Calories,Total Fat,Total Carbohydrate,Protein,Dietary Fiber\n" +
		"Bolton,Lunch,Black Bean Soup,,120,2g,20g,7g,6g\n"
	items, err := LoadMenu(strings.NewReader(csv), DefaultMenuColumns())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1 serving", items[0].ServingSize)
}

func TestCatalogMissingFile(t *testing.T) {
	svc := NewMenuService(DefaultMenuColumns())

	items, err := svc.Catalog(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, ErrMenuUnavailable)
	assert.Empty(t, items)
}

func TestCatalogCachesAndReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.csv")
	require.NoError(t, os.WriteFile(path, []byte(menuCSV), 0o644))

	svc := NewMenuService(DefaultMenuColumns())

	first, err := svc.Catalog(path)
	require.NoError(t, err)
	second, err := svc.Catalog(path)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same path and mtime serve the cached catalog")

	svc.Invalidate()
	third, err := svc.Catalog(path)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestFilterMenu(t *testing.T) {
	items, err := LoadMenu(strings.NewReader(menuCSV), DefaultMenuColumns())
	require.NoError(t, err)

	byHall := FilterMenu(items, MenuFilter{Hall: "Bolton"})
	assert.Len(t, byHall, 2)

	byGroup := FilterMenu(items, MenuFilter{FoodGroup: models.GroupProtein})
	assert.Len(t, byGroup, 2)

	byQuery := FilterMenu(items, MenuFilter{Query: "broccoli"})
	require.Len(t, byQuery, 1)
	assert.Equal(t, "Steamed Broccoli", byQuery[0].Name)

	highProtein := FilterMenu(items, MenuFilter{MinProtein: 30})
	assert.Len(t, highProtein, 2)

	lowCal := FilterMenu(items, MenuFilter{MaxCalories: 200})
	assert.Len(t, lowCal, 3)
}

func TestHalls(t *testing.T) {
	items, err := LoadMenu(strings.NewReader(menuCSV), DefaultMenuColumns())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bolton", "Snelling", "Village Summit"}, Halls(items))
}
