package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/adilshaik/uga-nutrition-app/models"
	"github.com/adilshaik/uga-nutrition-app/utils"

	gocache "github.com/patrickmn/go-cache"
)

// ErrMenuUnavailable signals that the menu source file is missing or
// unreadable. Callers get an empty catalog and should degrade
// gracefully rather than fail the request.
var ErrMenuUnavailable = errors.New("menu data unavailable")

// MenuColumns maps logical fields to the column headers of the menu
// export. Column names are configuration, not protocol.
type MenuColumns struct {
	Hall        string
	MealPeriod  string
	Name        string
	ServingSize string
	Calories    string
	Fat         string
	Carbs       string
	Protein     string
	Fiber       string
}

// DefaultMenuColumns matches the UGA dining services export.
func DefaultMenuColumns() MenuColumns {
	return MenuColumns{
		Hall:        "Location Name",
		MealPeriod:  "Meal Name",
		Name:        "Item Name",
		ServingSize: "Serving Size",
		Calories:    "Calories",
		Fat:         "Total Fat",
		Carbs:       "Total Carbohydrate",
		Protein:     "Protein",
		Fiber:       "Dietary Fiber",
	}
}

type MenuService struct {
	cols  MenuColumns
	cache *gocache.Cache
}

func NewMenuService(cols MenuColumns) *MenuService {
	return &MenuService{
		cols:  cols,
		cache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

// LoadMenu reads a CSV menu export into a deduplicated catalog.
// Rows with a blank item name are dropped; bad numeric cells default to
// 0 via ParseNutrient; the first row seen for a (name, hall, meal
// period) key wins and input order is preserved.
func LoadMenu(r io.Reader, cols MenuColumns) ([]models.MenuItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged exports happen

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read menu header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	field := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var items []models.MenuItem
	seen := make(map[string]struct{})

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// one malformed row must not abort the whole load
			continue
		}

		name := strings.TrimSpace(field(row, cols.Name))
		if name == "" {
			continue
		}

		hall := strings.TrimSpace(field(row, cols.Hall))
		meal := strings.TrimSpace(field(row, cols.MealPeriod))

		serving := strings.TrimSpace(field(row, cols.ServingSize))
		if serving == "" {
			serving = "1 serving"
		}

		item := models.MenuItem{
			Name:        name,
			Hall:        hall,
			MealPeriod:  meal,
			Calories:    utils.ParseNutrient(field(row, cols.Calories)),
			Protein:     utils.ParseNutrient(field(row, cols.Protein)),
			Carbs:       utils.ParseNutrient(field(row, cols.Carbs)),
			Fat:         utils.ParseNutrient(field(row, cols.Fat)),
			Fiber:       utils.ParseNutrient(field(row, cols.Fiber)),
			ServingSize: serving,
			FoodGroup:   utils.ClassifyFoodGroup(meal, name),
		}

		if _, dup := seen[item.Key()]; dup {
			continue
		}
		seen[item.Key()] = struct{}{}
		items = append(items, item)
	}

	return items, nil
}

// Catalog loads the menu from a file path, caching the result keyed by
// path + mtime for the cache lifetime. A missing or unreadable source
// yields an empty catalog and ErrMenuUnavailable.
func (s *MenuService) Catalog(path string) ([]models.MenuItem, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, ErrMenuUnavailable
	}

	cacheKey := fmt.Sprintf("%s|%d", path, info.ModTime().UnixNano())
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]models.MenuItem), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrMenuUnavailable
	}
	defer f.Close()

	items, err := LoadMenu(f, s.cols)
	if err != nil {
		return nil, ErrMenuUnavailable
	}

	s.cache.Set(cacheKey, items, gocache.DefaultExpiration)
	return items, nil
}

// Invalidate drops any cached catalogs so the next Catalog call
// re-reads the source.
func (s *MenuService) Invalidate() {
	s.cache.Flush()
}

// MenuFilter narrows a catalog. Zero values mean "no constraint".
type MenuFilter struct {
	Hall        string
	MealPeriod  string
	FoodGroup   models.FoodGroup
	Query       string
	MaxCalories float64
	MinProtein  float64
}

// FilterMenu applies a filter over a catalog, preserving order.
func FilterMenu(items []models.MenuItem, f MenuFilter) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	q := strings.ToLower(f.Query)
	for _, it := range items {
		if f.Hall != "" && !strings.EqualFold(it.Hall, f.Hall) {
			continue
		}
		if f.MealPeriod != "" && !strings.EqualFold(it.MealPeriod, f.MealPeriod) {
			continue
		}
		if f.FoodGroup != "" && it.FoodGroup != f.FoodGroup {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		if f.MaxCalories > 0 && it.Calories > f.MaxCalories {
			continue
		}
		if f.MinProtein > 0 && it.Protein < f.MinProtein {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Halls lists the distinct dining halls in catalog order.
func Halls(items []models.MenuItem) []string {
	var halls []string
	seen := make(map[string]struct{})
	for _, it := range items {
		if it.Hall == "" {
			continue
		}
		if _, ok := seen[it.Hall]; ok {
			continue
		}
		seen[it.Hall] = struct{}{}
		halls = append(halls, it.Hall)
	}
	return halls
}
