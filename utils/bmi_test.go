package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	assert.NoError(t, err)
	assert.InDelta(t, 22.86, bmi, 0.01)
	assert.Equal(t, "Normal weight", BMICategory(bmi))
}

func TestCalculateBMIRejectsBadInput(t *testing.T) {
	_, err := CalculateBMI(0, 70)
	assert.Error(t, err)

	_, err = CalculateBMI(175, 900)
	assert.Error(t, err)
}

func TestCalculateBMR(t *testing.T) {
	// Mifflin-St Jeor: 10*70 + 6.25*175 - 5*20 = 1693.75
	assert.Equal(t, 1698.75, CalculateBMR(175, 70, 20, "male"))
	assert.Equal(t, 1532.75, CalculateBMR(175, 70, 20, "female"))
}

func TestTDEE(t *testing.T) {
	assert.Equal(t, 2400.0, TDEE(2000, "Sedentary (little exercise)"))
	assert.Equal(t, 3450.0, TDEE(2000, "Active (6-7 days/week)"))
	// unknown levels fall back to moderate
	assert.Equal(t, 3100.0, TDEE(2000, "whatever"))
}

func TestGoalAdjustment(t *testing.T) {
	delta, perLb := GoalAdjustment("Build Muscle / Bulk Up")
	assert.Equal(t, 300.0, delta)
	assert.Equal(t, 1.0, perLb)

	delta, perLb = GoalAdjustment("Lose Fat / Cut")
	assert.Equal(t, -500.0, delta)
	assert.Equal(t, 1.0, perLb)

	delta, perLb = GoalAdjustment("not a goal")
	assert.Equal(t, 0.0, delta)
	assert.Equal(t, 0.8, perLb)
}
