package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// BMR via Mifflin-St Jeor. Sex constant: +5 male, -161 female.
func CalculateBMR(heightCm, weightKg float64, age int, sex string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == "female" {
		bmr -= 161
	} else {
		bmr += 5
	}
	return bmr
}

var activityMultipliers = map[string]float64{
	"Sedentary (little exercise)":        1.2,
	"Light (1-3 days/week)":              1.375,
	"Moderate (3-5 days/week)":           1.55,
	"Active (6-7 days/week)":             1.725,
	"Very Active (athlete/physical job)": 1.9,
}

// TDEE scales BMR by the activity level multiplier. Unknown levels get
// the moderate multiplier.
func TDEE(bmr float64, activityLevel string) float64 {
	m, ok := activityMultipliers[activityLevel]
	if !ok {
		m = 1.55
	}
	return bmr * m
}

// Per-goal calorie adjustment (kcal) and protein factor (g per lb of
// body weight).
var goalAdjustments = map[string]struct {
	CalorieDelta float64
	ProteinPerLb float64
}{
	"Build Muscle / Bulk Up": {300, 1.0},
	"Lose Fat / Cut":         {-500, 1.0},
	"Maintain Weight":        {0, 0.8},
	"Improve Energy":         {0, 0.8},
	"General Health":         {0, 0.8},
	"Athletic Performance":   {200, 1.0},
}

// GoalAdjustment returns the calorie delta and protein factor for a
// goal type, defaulting to general health.
func GoalAdjustment(goalType string) (calorieDelta, proteinPerLb float64) {
	adj, ok := goalAdjustments[goalType]
	if !ok {
		adj = goalAdjustments["General Health"]
	}
	return adj.CalorieDelta, adj.ProteinPerLb
}
